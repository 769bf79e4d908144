package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/app"
	"github.com/alexanderramin/ritmo/internal/auth"
	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/alexanderramin/ritmo/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need. State is the single owner of the
// session's profile and daily row.
type App struct {
	State    *app.State
	Auth     *auth.Service
	Daily    service.DailyStateService
	Progress service.ProgressService
	Clock    calendar.Clock
	Messages *mission.Selector

	// IsInteractive reports whether stdin is a terminal. Forms are only
	// shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) clock() calendar.Clock {
	if a.Clock == nil {
		return calendar.SystemClock{}
	}
	return a.Clock
}

func (a *App) messages() *mission.Selector {
	if a.Messages == nil {
		return mission.NewSelector(nil)
	}
	return a.Messages
}

// NewRootCmd creates the top-level "ritmo" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ritmo",
		Short:         "Daily habit coach with a 30-day mission cycle",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, a)
		},
	}

	root.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newOnboardCmd(a),
		newTodayCmd(a),
		newFocusCmd(a),
		newMissionCmd(a),
		newCheckinCmd(a),
		newNoteCmd(a),
		newProgressCmd(a),
		newMethodCmd(a),
		newRoutineCmd(a),
		newProfileCmd(a),
		newAskCmd(a),
		newChatCmd(a),
	)

	return root
}

// loadSignedIn loads the state for the current user.
func loadSignedIn(cmd *cobra.Command, a *App) error {
	if err := a.State.Load(cmd.Context()); err != nil {
		if errors.Is(err, app.ErrNotSignedIn) {
			return fmt.Errorf("%w (run `ritmo login` or `ritmo signup`)", err)
		}
		return err
	}
	return nil
}

// loadOnboarded loads the state and requires a resolved daily row.
func loadOnboarded(cmd *cobra.Command, a *App) error {
	if err := loadSignedIn(cmd, a); err != nil {
		return err
	}
	if !a.State.IsOnboarded() {
		return fmt.Errorf("%w (run `ritmo onboard`)", app.ErrNotOnboarded)
	}
	return nil
}
