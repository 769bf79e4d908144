package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteActionLogRepo implements ActionLogRepo using a SQLite database.
// Context maps are stored as JSON object text.
type SQLiteActionLogRepo struct {
	db db.DBTX
}

func NewSQLiteActionLogRepo(conn db.DBTX) *SQLiteActionLogRepo {
	return &SQLiteActionLogRepo{db: conn}
}

func (r *SQLiteActionLogRepo) Append(ctx context.Context, l *domain.ActionLog) error {
	payload := []byte("{}")
	if len(l.Context) > 0 {
		var err error
		if payload, err = json.Marshal(l.Context); err != nil {
			return fmt.Errorf("encoding action context: %w", err)
		}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO action_logs (id, user_id, action_type, context, created_at) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.UserID, string(l.ActionType), string(payload), formatTime(l.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting action log: %w", err)
	}
	return nil
}

// ListByUser returns the newest entries first. A non-positive limit returns
// every entry.
func (r *SQLiteActionLogRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ActionLog, error) {
	query := `SELECT id, user_id, action_type, context, created_at FROM action_logs
		WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing action logs: %w", err)
	}
	defer rows.Close()

	var out []*domain.ActionLog
	for rows.Next() {
		l, err := scanActionLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action logs: %w", err)
	}
	return out, nil
}

func (r *SQLiteActionLogRepo) CountByType(ctx context.Context, userID string, actionType domain.ActionType) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM action_logs WHERE user_id = ? AND action_type = ?`,
		userID, string(actionType)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting action logs: %w", err)
	}
	return n, nil
}

func scanActionLog(rows *sql.Rows) (*domain.ActionLog, error) {
	var l domain.ActionLog
	var actionType, payload, createdAt string
	if err := rows.Scan(&l.ID, &l.UserID, &actionType, &payload, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning action log: %w", err)
	}
	l.ActionType = domain.ActionType(actionType)
	if err := json.Unmarshal([]byte(payload), &l.Context); err != nil {
		return nil, fmt.Errorf("decoding action context: %w", err)
	}
	var err error
	if l.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}
