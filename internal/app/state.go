// Package app holds the session-visible application state. State is the
// single owner of the current profile and daily row; every mutation goes
// through its methods, and fields change only after the store confirms.
package app

import (
	"context"
	"errors"

	"github.com/alexanderramin/ritmo/internal/domain"
)

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrNotOnboarded = errors.New("onboarding not complete")
)

type State struct {
	identity Identity
	profiles ProfileUseCase
	daily    DailyStateUseCase

	Profile    *domain.Profile
	TodayState *domain.DailyState
	Loading    bool

	// MissionJustCompleted is true only right after this session completed
	// the mission. It is display state and is never persisted.
	MissionJustCompleted bool
}

func NewState(identity Identity, profiles ProfileUseCase, daily DailyStateUseCase) *State {
	return &State{identity: identity, profiles: profiles, daily: daily}
}

// IsOnboarded reports whether the loaded profile has finished onboarding.
func (s *State) IsOnboarded() bool {
	return s.Profile.IsOnboarded()
}

// Ready reports whether both the profile and today's row are loaded.
func (s *State) Ready() bool {
	return s.Profile != nil && s.TodayState != nil
}

func (s *State) userID() (string, error) {
	id, ok := s.identity.CurrentUserID()
	if !ok || id == "" {
		return "", ErrNotSignedIn
	}
	return id, nil
}

// Load fetches the profile and, for onboarded users, resolves today's row.
// Users who have not onboarded get no daily row until they finish.
func (s *State) Load(ctx context.Context) error {
	s.Loading = true
	defer func() { s.Loading = false }()

	id, err := s.userID()
	if err != nil {
		return err
	}
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return err
	}
	var today *domain.DailyState
	if profile.IsOnboarded() {
		if today, err = s.daily.ResolveToday(ctx, id); err != nil {
			return err
		}
	}
	s.Profile = profile
	s.TodayState = today
	return nil
}

// Refetch reloads everything from the store.
func (s *State) Refetch(ctx context.Context) error {
	s.MissionJustCompleted = false
	return s.Load(ctx)
}

func (s *State) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) error {
	id, err := s.userID()
	if err != nil {
		return err
	}
	profile, err := s.profiles.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	s.Profile = profile
	return nil
}

// CompleteOnboarding stores the answers and creates today's row.
func (s *State) CompleteOnboarding(ctx context.Context, answers domain.ProfilePatch) error {
	id, err := s.userID()
	if err != nil {
		return err
	}
	profile, err := s.profiles.CompleteOnboarding(ctx, id, answers)
	if err != nil {
		return err
	}
	s.Profile = profile
	today, err := s.daily.ResolveToday(ctx, id)
	if err != nil {
		return err
	}
	s.TodayState = today
	return nil
}

func (s *State) today() (*domain.DailyState, error) {
	if s.TodayState != nil {
		return s.TodayState, nil
	}
	if s.Profile != nil && !s.Profile.IsOnboarded() {
		return nil, ErrNotOnboarded
	}
	return nil, errors.New("today's state is not loaded")
}

func (s *State) CompleteMission(ctx context.Context) error {
	today, err := s.today()
	if err != nil {
		return err
	}
	wasDone := today.MissionCompleted
	updated, err := s.daily.CompleteMission(ctx, today)
	if err != nil {
		return err
	}
	s.TodayState = updated
	s.MissionJustCompleted = !wasDone && updated.MissionCompleted
	return nil
}

func (s *State) CompleteFocus(ctx context.Context) error {
	return s.apply(ctx, s.daily.CompleteFocus)
}

func (s *State) CompleteCheckIn(ctx context.Context, checkIn domain.CheckIn) error {
	return s.apply(ctx, func(ctx context.Context, d *domain.DailyState) (*domain.DailyState, error) {
		return s.daily.CompleteCheckIn(ctx, d, checkIn)
	})
}

func (s *State) SetNotes(ctx context.Context, notes string) error {
	return s.apply(ctx, func(ctx context.Context, d *domain.DailyState) (*domain.DailyState, error) {
		return s.daily.SetNotes(ctx, d, notes)
	})
}

func (s *State) apply(ctx context.Context, op func(context.Context, *domain.DailyState) (*domain.DailyState, error)) error {
	today, err := s.today()
	if err != nil {
		return err
	}
	updated, err := op(ctx, today)
	if err != nil {
		return err
	}
	s.TodayState = updated
	return nil
}
