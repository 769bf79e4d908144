package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/app"
	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/coach"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// coachName returns the name the coach should use. Signed-out users are
// addressed with the coach's default.
func coachName(cmd *cobra.Command, a *App) (string, error) {
	if err := a.State.Load(cmd.Context()); err != nil {
		if errors.Is(err, app.ErrNotSignedIn) {
			return "", nil
		}
		return "", err
	}
	return a.State.Profile.Name, nil
}

func newAskCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the coach a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := coachName(cmd, a)
			if err != nil {
				return err
			}
			answer := coach.Reply(strings.Join(args, " "), name)
			if answer.Text == "" {
				return errors.New("question is empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCoachAnswer(answer))
			return nil
		},
	}
}

func newChatCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the coach interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New("chat needs a terminal; use `ritmo ask <question>` instead")
			}
			name, err := coachName(cmd, a)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newChatModel(name),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
}
