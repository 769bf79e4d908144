package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOnboardCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the onboarding questions and start the cycle",
		Long: "Answer the onboarding questions and start the cycle.\n\n" +
			"On a terminal a form is shown; otherwise pass the answers as flags (--name is required).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSignedIn(cmd, a); err != nil {
				return err
			}
			patch := patchFromFlags(cmd.Flags())
			if patch.Name == nil {
				if !a.interactive() {
					return errors.New("--name is required")
				}
				answers := newOnboardingAnswers(a.State.Profile)
				if err := onboardingForm(answers).Run(); err != nil {
					return err
				}
				patch = answers.patch()
			}
			if err := a.State.CompleteOnboarding(cmd.Context(), patch); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Success("Tudo pronto, "+a.State.Profile.Name+"!"))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Seu ciclo está no dia %d. Veja com: ritmo today", a.State.TodayState.MissionDay)))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(profileFlagSet())
	return cmd
}

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileSetCmd(a))
	return cmd
}

func newProfileShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSignedIn(cmd, a); err != nil {
				return err
			}
			email := ""
			if sess, err := a.Auth.Current(); err == nil && sess != nil {
				email = sess.Email
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(a.State.Profile, email))
			return nil
		},
	}
}

func newProfileSetCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags())
			if patch.IsEmpty() {
				return errors.New("nothing to change: pass at least one flag")
			}
			if err := loadSignedIn(cmd, a); err != nil {
				return err
			}
			if err := a.State.UpdateProfile(cmd.Context(), patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Perfil atualizado"))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(profileFlagSet())
	return cmd
}
