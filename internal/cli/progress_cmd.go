package cli

import (
	"fmt"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/spf13/cobra"
)

func newProgressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show streak, cycle progress and milestones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			sum, err := a.Progress.Summary(cmd.Context(), a.State.TodayState)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(sum))
			return nil
		},
	}
}

func newRoutineCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "routine",
		Short: "Show this week's routine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			week, err := a.Progress.Week(cmd.Context(), a.State.TodayState)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutine(week))
			return nil
		},
	}
}

func newMethodCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "method",
		Short: "Show the pillars of the method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPillars(content.Pillars(), content.CurrentPillar().ID))
			return nil
		},
	}
}
