package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(a *App) *cobra.Command {
	var energy int
	var mood, note string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record how you feel today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.State.TodayState.CheckInDone {
				fmt.Fprintln(out, formatter.Dim("O check-in de hoje já foi feito."))
				return nil
			}
			checkIn := domain.CheckIn{Energy: energy, Mood: domain.Mood(mood), Note: note}
			if err := a.State.CompleteCheckIn(cmd.Context(), checkIn); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success("Check-in registrado"))
			return nil
		},
	}

	cmd.Flags().IntVar(&energy, "energy", 0, "Energy level from 1 to 5")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood: great, good, neutral, low")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("mood")

	return cmd
}

func newNoteCmd(a *App) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "note [text]",
		Short: "Write today's note",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if !remove && strings.TrimSpace(text) == "" {
				return fmt.Errorf("note text is required (or pass --clear)")
			}
			if remove {
				text = ""
			}
			if err := loadOnboarded(cmd, a); err != nil {
				return err
			}
			if err := a.State.SetNotes(cmd.Context(), text); err != nil {
				return err
			}
			msg := "Nota salva"
			if remove {
				msg = "Nota removida"
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(msg))
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "clear", false, "Remove today's note")
	return cmd
}
