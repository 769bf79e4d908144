package service

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/google/uuid"
)

type actionLogger struct {
	logs   repository.ActionLogRepo
	clock  calendar.Clock
	logger *slog.Logger
}

// NewActionLogger returns a best-effort audit logger. Append failures are
// written to logger at warn level and dropped.
func NewActionLogger(logs repository.ActionLogRepo, clock calendar.Clock, logger *slog.Logger) ActionLogger {
	if logger == nil {
		logger = discardLogger()
	}
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &actionLogger{logs: logs, clock: clock, logger: logger}
}

func (l *actionLogger) Log(ctx context.Context, userID string, action domain.ActionType, fields map[string]any) {
	entry := &domain.ActionLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActionType: action,
		Context:    fields,
		CreatedAt:  l.clock.Now().UTC(),
	}
	if err := l.logs.Append(ctx, entry); err != nil {
		l.logger.WarnContext(ctx, "action_log_failed",
			"action", string(action),
			"user_id", userID,
			"error", err.Error(),
		)
	}
}
