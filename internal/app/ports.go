package app

import (
	"context"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// Identity yields the signed-in user id.
type Identity interface {
	CurrentUserID() (string, bool)
}

type ProfileUseCase interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.Profile, error)
	CompleteOnboarding(ctx context.Context, userID string, answers domain.ProfilePatch) (*domain.Profile, error)
}

type DailyStateUseCase interface {
	ResolveToday(ctx context.Context, userID string) (*domain.DailyState, error)
	CompleteMission(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error)
	CompleteFocus(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error)
	CompleteCheckIn(ctx context.Context, state *domain.DailyState, checkIn domain.CheckIn) (*domain.DailyState, error)
	SetNotes(ctx context.Context, state *domain.DailyState, notes string) (*domain.DailyState, error)
}
