package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillProfiles(db); err != nil {
		return fmt.Errorf("backfilling profiles: %w", err)
	}
	return nil
}

// migrateBackfillProfiles creates the empty profile row for any account that
// predates the profiles table. Idempotent: only accounts without a profile
// are touched.
func migrateBackfillProfiles(db *sql.DB) error {
	res, err := db.Exec(`INSERT INTO profiles (user_id, created_at, updated_at)
		SELECT a.id, a.created_at, a.created_at
		FROM accounts a
		WHERE NOT EXISTS (SELECT 1 FROM profiles p WHERE p.user_id = a.id)`)
	if err != nil {
		return fmt.Errorf("inserting missing profiles: %w", err)
	}
	if _, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("counting backfilled profiles: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		user_id           TEXT PRIMARY KEY,
		name              TEXT NOT NULL DEFAULT '',
		rhythm            TEXT NOT NULL DEFAULT 'moderate'
		                  CHECK(rhythm IN ('calm','moderate','intense')),
		consistency       TEXT NOT NULL DEFAULT 'starting'
		                  CHECK(consistency IN ('starting','building','established')),
		support_level     TEXT NOT NULL DEFAULT 'regular'
		                  CHECK(support_level IN ('minimal','regular','intensive')),
		morning_person    INTEGER NOT NULL DEFAULT 1,
		main_goal         TEXT NOT NULL DEFAULT 'balance'
		                  CHECK(main_goal IN ('energy','lightness','balance','confidence','weightloss')),
		current_challenge TEXT NOT NULL DEFAULT 'routine'
		                  CHECK(current_challenge IN ('routine','motivation','knowledge','time')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_states (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		state_date        TEXT NOT NULL,
		mission_day       INTEGER NOT NULL CHECK(mission_day BETWEEN 1 AND 30),
		mission_completed INTEGER NOT NULL DEFAULT 0,
		focus_completed   INTEGER NOT NULL DEFAULT 0,
		streak            INTEGER NOT NULL DEFAULT 0 CHECK(streak >= 0),
		notes             TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_states_user_date ON daily_states(user_id, state_date)`,

	`CREATE TABLE IF NOT EXISTS action_logs (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		action_type TEXT NOT NULL,
		context     TEXT NOT NULL DEFAULT '{}',
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_logs_user ON action_logs(user_id, created_at)`,

	// Daily check-in flag
	`ALTER TABLE daily_states ADD COLUMN checkin_done INTEGER NOT NULL DEFAULT 0`,
}
