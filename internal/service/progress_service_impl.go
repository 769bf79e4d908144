package service

import (
	"context"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/alexanderramin/ritmo/internal/repository"
)

// ProgressSummary aggregates the user's stored rows for the progress view.
type ProgressSummary struct {
	Streak        int
	MissionDay    int
	CycleProgress float64
	CompletedDays int
	LongestStreak int
	CheckIns      int
	Week          []WeekDay
	Milestones    []content.Milestone
}

// WeekDay is one Monday-to-Sunday slot of the current week.
type WeekDay struct {
	Date             calendar.Date
	IsToday          bool
	IsFuture         bool
	HasRecord        bool
	MissionCompleted bool
	FocusCompleted   bool
}

type progressService struct {
	states   repository.DailyStateRepo
	logs     repository.ActionLogRepo
	observer UseCaseObserver
}

func NewProgressService(states repository.DailyStateRepo, logs repository.ActionLogRepo, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		states:   states,
		logs:     logs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Summary(ctx context.Context, today *domain.DailyState) (sum *ProgressSummary, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "progress-summary", time.Now(), &err, fields)

	if today == nil {
		return nil, ErrNoDailyState
	}
	fields["user_id"] = today.UserID

	rows, err := s.states.ListByUser(ctx, today.UserID)
	if err != nil {
		return nil, storeErr("listing daily states", err)
	}
	checkIns, err := s.logs.CountByType(ctx, today.UserID, domain.ActionCheckIn)
	if err != nil {
		return nil, storeErr("counting check-ins", err)
	}
	week, err := s.Week(ctx, today)
	if err != nil {
		return nil, err
	}

	facts := milestoneFacts(rows, today)
	sum = &ProgressSummary{
		Streak:        today.Streak,
		MissionDay:    today.MissionDay,
		CycleProgress: mission.CycleProgress(today.MissionDay),
		CompletedDays: facts.CompletedDays,
		LongestStreak: facts.LongestStreak,
		CheckIns:      checkIns,
		Week:          week,
		Milestones:    content.Milestones(facts),
	}
	fields["completed_days"] = sum.CompletedDays
	return sum, nil
}

// milestoneFacts folds stored rows into milestone inputs. today may be newer
// than the listed rows, so it is applied on top.
func milestoneFacts(rows []*domain.DailyState, today *domain.DailyState) content.MilestoneFacts {
	byDate := make(map[calendar.Date]*domain.DailyState, len(rows)+1)
	for _, r := range rows {
		byDate[r.StateDate] = r
	}
	byDate[today.StateDate] = today

	var f content.MilestoneFacts
	for _, r := range byDate {
		run := r.Streak
		if r.MissionCompleted {
			run++
			f.CompletedDays++
			switch r.MissionDay {
			case 10, 20:
				f.PhaseEndCompleted = true
			case mission.CycleLength:
				f.PhaseEndCompleted = true
				f.CycleCompleted = true
			}
		}
		if run > f.LongestStreak {
			f.LongestStreak = run
		}
	}
	return f
}

func (s *progressService) Week(ctx context.Context, today *domain.DailyState) ([]WeekDay, error) {
	if today == nil {
		return nil, ErrNoDailyState
	}
	start := today.StateDate.StartOfWeek()
	end := start.AddDays(6)
	rows, err := s.states.ListRange(ctx, today.UserID, start, end)
	if err != nil {
		return nil, storeErr("listing week", err)
	}
	byDate := make(map[calendar.Date]*domain.DailyState, len(rows))
	for _, r := range rows {
		byDate[r.StateDate] = r
	}
	byDate[today.StateDate] = today

	week := make([]WeekDay, 7)
	for i := range week {
		d := start.AddDays(i)
		wd := WeekDay{
			Date:     d,
			IsToday:  d == today.StateDate,
			IsFuture: today.StateDate.Before(d),
		}
		if r, ok := byDate[d]; ok {
			wd.HasRecord = true
			wd.MissionCompleted = r.MissionCompleted
			wd.FocusCompleted = r.FocusCompleted
		}
		week[i] = wd
	}
	return week, nil
}
