package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Identity exposes the signed-in user, if any.
type Identity interface {
	CurrentUserID() (string, bool)
}

// StaticIdentity is a fixed identity; the empty value is signed out.
type StaticIdentity string

func (s StaticIdentity) CurrentUserID() (string, bool) {
	return string(s), s != ""
}

// Session is what the session file stores.
type Session struct {
	UserID     string    `yaml:"user_id"`
	Email      string    `yaml:"email"`
	SignedInAt time.Time `yaml:"signed_in_at"`
}

// SessionStore keeps the current session in a YAML file.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Path() string { return s.path }

// Load returns the stored session, or nil when nobody is signed in.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", s.path, err)
	}
	if sess.UserID == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Save(sess *Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear signs out. Clearing an absent session is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// CurrentUserID treats an unreadable session file as signed out.
func (s *SessionStore) CurrentUserID() (string, bool) {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return "", false
	}
	return sess.UserID, true
}
