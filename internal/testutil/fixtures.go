package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/google/uuid"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithName(name string) ProfileOption {
	return func(p *domain.Profile) {
		p.Name = name
	}
}

func WithGoal(g domain.Goal) ProfileOption {
	return func(p *domain.Profile) {
		p.MainGoal = g
	}
}

func WithRhythm(r domain.Rhythm) ProfileOption {
	return func(p *domain.Profile) {
		p.Rhythm = r
	}
}

// NewTestProfile returns a fresh profile for a random user id. Without
// WithName it is not onboarded.
func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	p := domain.NewProfile(uuid.New().String(), time.Now().UTC().Truncate(time.Second))
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DailyState options
type DailyStateOption func(*domain.DailyState)

func WithMissionDay(day int) DailyStateOption {
	return func(s *domain.DailyState) {
		s.MissionDay = day
	}
}

func WithStreak(n int) DailyStateOption {
	return func(s *domain.DailyState) {
		s.Streak = n
	}
}

func WithMissionCompleted() DailyStateOption {
	return func(s *domain.DailyState) {
		s.MissionCompleted = true
	}
}

func WithFocusCompleted() DailyStateOption {
	return func(s *domain.DailyState) {
		s.FocusCompleted = true
	}
}

func WithCheckInDone() DailyStateOption {
	return func(s *domain.DailyState) {
		s.CheckInDone = true
	}
}

func WithNotes(notes string) DailyStateOption {
	return func(s *domain.DailyState) {
		s.Notes = &notes
	}
}

// NewTestDailyState builds a day-1, zero-streak row for userID on date.
func NewTestDailyState(userID string, date calendar.Date, opts ...DailyStateOption) *domain.DailyState {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.DailyState{
		ID:         uuid.New().String(),
		UserID:     userID,
		StateDate:  date,
		MissionDay: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedProfile inserts a profile and returns it.
func SeedProfile(t *testing.T, database *sql.DB, opts ...ProfileOption) *domain.Profile {
	t.Helper()
	p := NewTestProfile(opts...)
	_, err := database.ExecContext(context.Background(),
		`INSERT INTO profiles (user_id, name, rhythm, consistency, support_level, morning_person,
			main_goal, current_challenge, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Name, string(p.Rhythm), string(p.Consistency), string(p.SupportLevel),
		p.MorningPerson, string(p.MainGoal), string(p.CurrentChallenge),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	return p
}

// SeedDailyState inserts a daily row and returns it.
func SeedDailyState(t *testing.T, database *sql.DB, userID string, date calendar.Date, opts ...DailyStateOption) *domain.DailyState {
	t.Helper()
	s := NewTestDailyState(userID, date, opts...)
	_, err := database.ExecContext(context.Background(),
		`INSERT INTO daily_states (id, user_id, state_date, mission_day, mission_completed,
			focus_completed, checkin_done, streak, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.StateDate.String(), s.MissionDay, s.MissionCompleted,
		s.FocusCompleted, s.CheckInDone, s.Streak, s.Notes,
		s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("seeding daily state: %v", err)
	}
	return s
}
