package cli

import (
	"fmt"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's focus, streak and mission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, a)
		},
	}
}

func runToday(cmd *cobra.Command, a *App) error {
	if err := loadOnboarded(cmd, a); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(formatter.TodayView{
		Hour:    a.clock().Now().In(calendar.ReferenceLocation()).Hour(),
		Profile: a.State.Profile,
		State:   a.State.TodayState,
		Focus:   content.TodayFocus(),
	}))
	return nil
}

func newFocusCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Today's focus task",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "done",
		Short: "Mark today's focus as done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			already := a.State.TodayState.FocusCompleted
			if err := a.State.CompleteFocus(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if already {
				fmt.Fprintln(out, formatter.Dim("O foco de hoje já estava feito."))
				return nil
			}
			fmt.Fprintln(out, formatter.Success("Foco concluído"))
			fmt.Fprintln(out, formatter.StyleSage.Render(content.MotivationalMessage(a.State.TodayState.Streak, true)))
			return nil
		},
	})
	return cmd
}
