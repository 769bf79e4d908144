package cli

import (
	"fmt"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMissionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Show today's mission and the next days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMission(a.State.TodayState))
			return nil
		},
	}
	cmd.AddCommand(newMissionDoneCmd(a), newMissionListCmd(a))
	return cmd
}

func newMissionDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Mark today's mission as completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			if err := a.State.CompleteMission(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			day := a.State.TodayState.MissionDay
			if !a.State.MissionJustCompleted {
				fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("A missão do dia %d já estava concluída.", day)))
				return nil
			}
			fmt.Fprint(out, formatter.FormatMissionCompleted(day, a.messages().Message(day)))
			return nil
		},
	}
}

func newMissionListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every mission of the cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			s := a.State.TodayState
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMissionList(s.MissionDay, s.MissionCompleted))
			return nil
		},
	}
}
