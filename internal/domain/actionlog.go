package domain

import "time"

// ActionLog is an append-only audit entry.
type ActionLog struct {
	ID         string
	UserID     string
	ActionType ActionType
	Context    map[string]any
	CreatedAt  time.Time
}

// Account is a local sign-in identity. Its ID is the opaque user id every
// other record is keyed by.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
