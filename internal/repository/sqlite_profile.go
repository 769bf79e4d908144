package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `user_id, name, rhythm, consistency, support_level, morning_person,
	main_goal, current_challenge, created_at, updated_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.Name,
		string(p.Rhythm),
		string(p.Consistency),
		string(p.SupportLevel),
		boolToInt(p.MorningPerson),
		string(p.MainGoal),
		string(p.CurrentChallenge),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile for %s: %w", p.UserID, ErrConflict)
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`, userID)

	var p domain.Profile
	var rhythm, consistency, support, goal, challenge, createdAt, updatedAt string
	var morning int
	err := row.Scan(&p.UserID, &p.Name, &rhythm, &consistency, &support, &morning,
		&goal, &challenge, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.Rhythm = domain.Rhythm(rhythm)
	p.Consistency = domain.Consistency(consistency)
	p.SupportLevel = domain.SupportLevel(support)
	p.MorningPerson = intToBool(morning)
	p.MainGoal = domain.Goal(goal)
	p.CurrentChallenge = domain.Challenge(challenge)
	if p.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyPatch writes only the fields set on the patch. An empty patch is a
// no-op; a missing profile returns ErrNotFound.
func (r *SQLiteProfileRepo) ApplyPatch(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	var sets []string
	var args []any
	add := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", strings.TrimSpace(*patch.Name))
	}
	if patch.Rhythm != nil {
		add("rhythm", string(*patch.Rhythm))
	}
	if patch.Consistency != nil {
		add("consistency", string(*patch.Consistency))
	}
	if patch.SupportLevel != nil {
		add("support_level", string(*patch.SupportLevel))
	}
	if patch.MorningPerson != nil {
		add("morning_person", boolToInt(*patch.MorningPerson))
	}
	if patch.MainGoal != nil {
		add("main_goal", string(*patch.MainGoal))
	}
	if patch.CurrentChallenge != nil {
		add("current_challenge", string(*patch.CurrentChallenge))
	}
	add("updated_at", nowUTC())
	args = append(args, userID)

	query := `UPDATE profiles SET ` + strings.Join(sets, ", ") + ` WHERE user_id = ?`
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return requireOneRow(res, "profile")
}
