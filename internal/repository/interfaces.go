package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	ApplyPatch(ctx context.Context, userID string, patch domain.ProfilePatch) error
}

// DailyStateRepo persists one row per user per reference date. There is no
// operation that changes mission_day or streak after Insert, and the
// completion setters only ever write true.
type DailyStateRepo interface {
	FindByDate(ctx context.Context, userID string, date calendar.Date) (*domain.DailyState, error)
	Insert(ctx context.Context, s *domain.DailyState) error
	SetMissionCompleted(ctx context.Context, id string, at time.Time) error
	SetFocusCompleted(ctx context.Context, id string, at time.Time) error
	SetCheckInDone(ctx context.Context, id string, at time.Time) error
	SetNotes(ctx context.Context, id string, notes *string, at time.Time) error
	ListRange(ctx context.Context, userID string, from, to calendar.Date) ([]*domain.DailyState, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.DailyState, error)
}

type ActionLogRepo interface {
	Append(ctx context.Context, l *domain.ActionLog) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ActionLog, error)
	CountByType(ctx context.Context, userID string, actionType domain.ActionType) (int, error)
}
