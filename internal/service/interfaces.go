package service

import (
	"context"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// DailyStateService reconciles the user's day against the record store.
type DailyStateService interface {
	// Today is the current date in the reference zone.
	Today() calendar.Date
	// ResolveToday returns the row for today, creating it from yesterday's
	// row when absent.
	ResolveToday(ctx context.Context, userID string) (*domain.DailyState, error)
	CompleteMission(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error)
	CompleteFocus(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error)
	CompleteCheckIn(ctx context.Context, state *domain.DailyState, checkIn domain.CheckIn) (*domain.DailyState, error)
	SetNotes(ctx context.Context, state *domain.DailyState, notes string) (*domain.DailyState, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.Profile, error)
	CompleteOnboarding(ctx context.Context, userID string, answers domain.ProfilePatch) (*domain.Profile, error)
}

type ProgressService interface {
	Summary(ctx context.Context, today *domain.DailyState) (*ProgressSummary, error)
	Week(ctx context.Context, today *domain.DailyState) ([]WeekDay, error)
}

// ActionLogger appends audit entries. It never fails the caller.
type ActionLogger interface {
	Log(ctx context.Context, userID string, action domain.ActionType, fields map[string]any)
}
