package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteDailyStateRepo implements DailyStateRepo using a SQLite database.
type SQLiteDailyStateRepo struct {
	db db.DBTX
}

// NewSQLiteDailyStateRepo creates a new SQLiteDailyStateRepo.
func NewSQLiteDailyStateRepo(conn db.DBTX) *SQLiteDailyStateRepo {
	return &SQLiteDailyStateRepo{db: conn}
}

const dailyStateColumns = `id, user_id, state_date, mission_day, mission_completed, focus_completed,
	checkin_done, streak, notes, created_at, updated_at`

func (r *SQLiteDailyStateRepo) FindByDate(ctx context.Context, userID string, date calendar.Date) (*domain.DailyState, error) {
	query := `SELECT ` + dailyStateColumns + ` FROM daily_states WHERE user_id = ? AND state_date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date.String())
	s, err := scanDailyState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("daily state %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

// Insert stores a new row. Losing the (user_id, state_date) uniqueness race
// returns ErrConflict so the caller can re-read the winning row.
func (r *SQLiteDailyStateRepo) Insert(ctx context.Context, s *domain.DailyState) error {
	query := `INSERT INTO daily_states (` + dailyStateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.StateDate.String(),
		s.MissionDay,
		boolToInt(s.MissionCompleted),
		boolToInt(s.FocusCompleted),
		boolToInt(s.CheckInDone),
		s.Streak,
		nullableString(s.Notes),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("daily state %s: %w", s.StateDate, ErrConflict)
		}
		return fmt.Errorf("inserting daily state: %w", err)
	}
	return nil
}

func (r *SQLiteDailyStateRepo) SetMissionCompleted(ctx context.Context, id string, at time.Time) error {
	return r.setFlag(ctx, id, "mission_completed", at)
}

func (r *SQLiteDailyStateRepo) SetFocusCompleted(ctx context.Context, id string, at time.Time) error {
	return r.setFlag(ctx, id, "focus_completed", at)
}

func (r *SQLiteDailyStateRepo) SetCheckInDone(ctx context.Context, id string, at time.Time) error {
	return r.setFlag(ctx, id, "checkin_done", at)
}

// setFlag only ever raises a flag; column is one of the fixed names above.
// at becomes the row's updated_at.
func (r *SQLiteDailyStateRepo) setFlag(ctx context.Context, id, column string, at time.Time) error {
	query := `UPDATE daily_states SET ` + column + ` = 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("setting %s: %w", column, err)
	}
	return requireOneRow(res, "daily state")
}

func (r *SQLiteDailyStateRepo) SetNotes(ctx context.Context, id string, notes *string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE daily_states SET notes = ?, updated_at = ? WHERE id = ?`,
		nullableString(notes), formatTime(at), id)
	if err != nil {
		return fmt.Errorf("setting notes: %w", err)
	}
	return requireOneRow(res, "daily state")
}

// ListRange returns the user's rows with from <= state_date <= to, oldest
// first. Dates compare correctly as ISO strings.
func (r *SQLiteDailyStateRepo) ListRange(ctx context.Context, userID string, from, to calendar.Date) ([]*domain.DailyState, error) {
	query := `SELECT ` + dailyStateColumns + ` FROM daily_states
		WHERE user_id = ? AND state_date >= ? AND state_date <= ?
		ORDER BY state_date`
	rows, err := r.db.QueryContext(ctx, query, userID, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("listing daily states in range: %w", err)
	}
	defer rows.Close()
	return scanDailyStates(rows)
}

func (r *SQLiteDailyStateRepo) ListByUser(ctx context.Context, userID string) ([]*domain.DailyState, error) {
	query := `SELECT ` + dailyStateColumns + ` FROM daily_states WHERE user_id = ? ORDER BY state_date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing daily states: %w", err)
	}
	defer rows.Close()
	return scanDailyStates(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDailyState returns sql.ErrNoRows unwrapped so FindByDate can map it.
func scanDailyState(row rowScanner) (*domain.DailyState, error) {
	var s domain.DailyState
	var stateDate, createdAt, updatedAt string
	var missionDone, focusDone, checkinDone int
	var notes sql.NullString

	err := row.Scan(&s.ID, &s.UserID, &stateDate, &s.MissionDay, &missionDone, &focusDone,
		&checkinDone, &s.Streak, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily state: %w", err)
	}

	if s.StateDate, err = calendar.Parse(stateDate); err != nil {
		return nil, fmt.Errorf("parsing state_date: %w", err)
	}
	s.MissionCompleted = intToBool(missionDone)
	s.FocusCompleted = intToBool(focusDone)
	s.CheckInDone = intToBool(checkinDone)
	s.Notes = stringPtr(notes)
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanDailyStates(rows *sql.Rows) ([]*domain.DailyState, error) {
	var out []*domain.DailyState
	for rows.Next() {
		s, err := scanDailyState(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily states: %w", err)
	}
	return out, nil
}
