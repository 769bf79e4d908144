package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesOneRecordPerUseCase(t *testing.T) {
	var buf bytes.Buffer
	database := testutil.NewTestDB(t)
	clock := calendar.FixedClock{At: fixedNoon}
	svc := NewDailyStateService(
		repository.NewSQLiteDailyStateRepo(database),
		NewActionLogger(repository.NewSQLiteActionLogRepo(database), clock, nil),
		clock,
		NewLogUseCaseObserver(&buf),
	)

	_, err := svc.ResolveToday(context.Background(), "user-1")
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("service_use_case")))
	assert.Contains(t, out, "use_case=resolve-today")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_FailureLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	clock := calendar.FixedClock{At: fixedNoon}
	svc := NewDailyStateService(
		repository.NewSQLiteDailyStateRepo(testutil.FailingDBTX{}),
		nil,
		clock,
		NewLogUseCaseObserver(&buf),
	)

	_, err := svc.ResolveToday(context.Background(), "user-1")
	require.Error(t, err)

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "success=false")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}
