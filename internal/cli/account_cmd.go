package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type credentials struct {
	email    string
	password string
}

func (c *credentials) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.email, "email", "", "Account e-mail")
	cmd.Flags().StringVar(&c.password, "password", "", "Account password")
}

// resolve fills missing values from a form on interactive terminals.
func (c *credentials) resolve(a *App, title string) error {
	if c.email != "" && c.password != "" {
		return nil
	}
	if !a.interactive() {
		return errors.New("--email and --password are required")
	}
	return credentialsForm(title, &c.email, &c.password).Run()
}

func newSignupCmd(a *App) *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := creds.resolve(a, "Criar conta"); err != nil {
				return err
			}
			account, err := a.Auth.SignUp(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Success("Conta criada para "+account.Email))
			fmt.Fprintln(out, formatter.Dim("Próximo passo: ritmo onboard"))
			return nil
		},
	}
	creds.bind(cmd)
	return cmd
}

func newLoginCmd(a *App) *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := creds.resolve(a, "Entrar"); err != nil {
				return err
			}
			account, err := a.Auth.SignIn(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Bem-vinda de volta, "+account.Email))
			return nil
		},
	}
	creds.bind(cmd)
	return cmd
}

func newLogoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Sessão encerrada"))
			return nil
		},
	}
}

func newWhoamiCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.Auth.Current()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sess == nil {
				fmt.Fprintln(out, formatter.Dim("not signed in"))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", sess.Email, formatter.Dim("("+sess.UserID+")"))
			if a.Daily != nil {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("hoje:"), a.Daily.Today())
			}
			return nil
		},
	}
}
