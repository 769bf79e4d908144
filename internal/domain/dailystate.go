package domain

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/mission"
)

// DailyState is a user's progress record for one reference-zone date.
// MissionDay and Streak are fixed when the row is created; only the
// completion flags and notes change afterwards.
type DailyState struct {
	ID               string
	UserID           string
	StateDate        calendar.Date
	MissionDay       int
	MissionCompleted bool
	FocusCompleted   bool
	CheckInDone      bool
	Streak           int
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NextDailyState derives a new row for date from the previous day's row,
// which is nil when the user has no row for yesterday.
//
// Mission day advances with wrap-around. Streak counts consecutive prior
// days with the mission completed, so it only grows when yesterday's
// mission was completed and otherwise resets to zero.
func NextDailyState(userID string, date calendar.Date, prev *DailyState) DailyState {
	s := DailyState{
		UserID:     userID,
		StateDate:  date,
		MissionDay: 1,
	}
	if prev == nil {
		return s
	}
	s.MissionDay = mission.Advance(prev.MissionDay)
	if prev.MissionCompleted {
		s.Streak = prev.Streak + 1
	}
	return s
}

// CheckIn is the self-reported energy and mood for a day.
type CheckIn struct {
	Energy int
	Mood   Mood
	Note   string
}

// Validate checks energy is 1-5 and mood is a known value.
func (c CheckIn) Validate() error {
	if c.Energy < 1 || c.Energy > 5 {
		return fmt.Errorf("energy must be between 1 and 5, got %d", c.Energy)
	}
	if !ValidMoods[string(c.Mood)] {
		return fmt.Errorf("invalid mood %q", c.Mood)
	}
	return nil
}
