package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/google/uuid"
)

type dailyStateService struct {
	states   repository.DailyStateRepo
	actions  ActionLogger
	clock    calendar.Clock
	loc      *time.Location
	observer UseCaseObserver
}

func NewDailyStateService(
	states repository.DailyStateRepo,
	actions ActionLogger,
	clock calendar.Clock,
	observers ...UseCaseObserver,
) DailyStateService {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &dailyStateService{
		states:   states,
		actions:  actions,
		clock:    clock,
		loc:      calendar.ReferenceLocation(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dailyStateService) Today() calendar.Date {
	return calendar.Today(s.clock.Now(), s.loc)
}

func (s *dailyStateService) ResolveToday(ctx context.Context, userID string) (state *domain.DailyState, err error) {
	fields := map[string]any{"user_id": userID}
	defer observe(ctx, s.observer, "resolve-today", time.Now(), &err, fields)

	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	today := s.Today()
	fields["date"] = today.String()

	state, err = s.states.FindByDate(ctx, userID, today)
	if err == nil {
		fields["created"] = false
		return state, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr("finding today's state", err)
	}

	var prev *domain.DailyState
	prev, err = s.states.FindByDate(ctx, userID, today.Yesterday())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr("finding yesterday's state", err)
	}

	next := domain.NextDailyState(userID, today, prev)
	now := s.clock.Now().UTC().Truncate(time.Second)
	next.ID = uuid.New().String()
	next.CreatedAt = now
	next.UpdatedAt = now

	if err = s.states.Insert(ctx, &next); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			return nil, storeErr("creating today's state", err)
		}
		// Another writer created the row first; theirs is authoritative.
		state, err = s.states.FindByDate(ctx, userID, today)
		if err != nil {
			return nil, storeErr("re-reading today's state", err)
		}
		fields["created"] = false
		fields["raced"] = true
		return state, nil
	}

	fields["created"] = true
	fields["mission_day"] = next.MissionDay
	fields["streak"] = next.Streak
	return &next, nil
}

// flagUpdate describes one monotonic completion flag.
type flagUpdate struct {
	useCase string
	action  domain.ActionType
	isSet   func(*domain.DailyState) bool
	set     func(*domain.DailyState)
	persist func(ctx context.Context, id string, at time.Time) error
}

func (s *dailyStateService) CompleteMission(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error) {
	return s.raiseFlag(ctx, state, flagUpdate{
		useCase: "complete-mission",
		action:  domain.ActionMissionComplete,
		isSet:   func(d *domain.DailyState) bool { return d.MissionCompleted },
		set:     func(d *domain.DailyState) { d.MissionCompleted = true },
		persist: s.states.SetMissionCompleted,
	}, nil)
}

func (s *dailyStateService) CompleteFocus(ctx context.Context, state *domain.DailyState) (*domain.DailyState, error) {
	return s.raiseFlag(ctx, state, flagUpdate{
		useCase: "complete-focus",
		action:  domain.ActionFocusComplete,
		isSet:   func(d *domain.DailyState) bool { return d.FocusCompleted },
		set:     func(d *domain.DailyState) { d.FocusCompleted = true },
		persist: s.states.SetFocusCompleted,
	}, nil)
}

func (s *dailyStateService) CompleteCheckIn(ctx context.Context, state *domain.DailyState, checkIn domain.CheckIn) (*domain.DailyState, error) {
	if err := checkIn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckIn, err)
	}
	extra := map[string]any{
		"energy": checkIn.Energy,
		"mood":   string(checkIn.Mood),
	}
	if note := strings.TrimSpace(checkIn.Note); note != "" {
		extra["note"] = note
	}
	return s.raiseFlag(ctx, state, flagUpdate{
		useCase: "complete-checkin",
		action:  domain.ActionCheckIn,
		isSet:   func(d *domain.DailyState) bool { return d.CheckInDone },
		set:     func(d *domain.DailyState) { d.CheckInDone = true },
		persist: s.states.SetCheckInDone,
	}, extra)
}

// raiseFlag persists a completion flag and only then returns an updated
// copy. A flag that is already set is a no-op with no audit entry.
func (s *dailyStateService) raiseFlag(ctx context.Context, state *domain.DailyState, u flagUpdate, extra map[string]any) (out *domain.DailyState, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, u.useCase, time.Now(), &err, fields)

	if state == nil {
		return nil, ErrNoDailyState
	}
	fields["user_id"] = state.UserID
	fields["mission_day"] = state.MissionDay
	if u.isSet(state) {
		fields["noop"] = true
		return state, nil
	}

	now := s.clock.Now().UTC().Truncate(time.Second)
	if err = u.persist(ctx, state.ID, now); err != nil {
		return nil, storeErr(u.useCase, err)
	}

	updated := *state
	u.set(&updated)
	updated.UpdatedAt = now

	logFields := map[string]any{"mission_day": state.MissionDay, "date": state.StateDate.String()}
	for k, v := range extra {
		logFields[k] = v
	}
	s.actions.Log(ctx, state.UserID, u.action, logFields)
	return &updated, nil
}

// SetNotes stores trimmed notes on the row; blank notes clear them.
func (s *dailyStateService) SetNotes(ctx context.Context, state *domain.DailyState, notes string) (out *domain.DailyState, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "set-notes", time.Now(), &err, fields)

	if state == nil {
		return nil, ErrNoDailyState
	}
	fields["user_id"] = state.UserID

	var value *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		value = &trimmed
	}
	now := s.clock.Now().UTC().Truncate(time.Second)
	if err = s.states.SetNotes(ctx, state.ID, value, now); err != nil {
		return nil, storeErr("set-notes", err)
	}

	updated := *state
	updated.Notes = value
	updated.UpdatedAt = now

	length := 0
	if value != nil {
		length = len([]rune(*value))
	}
	s.actions.Log(ctx, state.UserID, domain.ActionNote, map[string]any{
		"date":   state.StateDate.String(),
		"length": length,
	})
	return &updated, nil
}
