package service

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixedNoon is 2026-03-14 12:00 in São Paulo.
var fixedNoon = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type harness struct {
	db       *sql.DB
	states   *repository.SQLiteDailyStateRepo
	logs     *repository.SQLiteActionLogRepo
	svc      DailyStateService
	observer *recordingObserver
	logBuf   *bytes.Buffer
}

func newHarness(t *testing.T, at time.Time) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	h := &harness{
		db:       database,
		states:   repository.NewSQLiteDailyStateRepo(database),
		logs:     repository.NewSQLiteActionLogRepo(database),
		observer: &recordingObserver{},
		logBuf:   &bytes.Buffer{},
	}
	clock := calendar.FixedClock{At: at}
	actions := NewActionLogger(h.logs, clock, slog.New(slog.NewTextHandler(h.logBuf, nil)))
	h.svc = NewDailyStateService(h.states, actions, clock, h.observer)
	return h
}

func (h *harness) countActions(t *testing.T, userID string, typ domain.ActionType) int {
	t.Helper()
	n, err := h.logs.CountByType(context.Background(), userID, typ)
	require.NoError(t, err)
	return n
}

func (h *harness) stored(t *testing.T, userID string, date calendar.Date) *domain.DailyState {
	t.Helper()
	s, err := h.states.FindByDate(context.Background(), userID, date)
	require.NoError(t, err)
	return s
}
