// Package auth provides local e-mail/password accounts and the session file
// that identifies the current user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid e-mail or password")
	ErrEmailTaken         = errors.New("e-mail already registered")
	ErrInvalidEmail       = errors.New("invalid e-mail")
	ErrWeakPassword       = errors.New("password must have at least 6 characters")
)

const MinPasswordLength = 6

type Service struct {
	accounts repository.AccountRepo
	uow      db.UnitOfWork
	sessions *SessionStore
	clock    calendar.Clock
	cost     int
}

// Option customises a Service.
type Option func(*Service)

// WithHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

func WithClock(c calendar.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(accounts repository.AccountRepo, uow db.UnitOfWork, sessions *SessionStore, opts ...Option) *Service {
	s := &Service{
		accounts: accounts,
		uow:      uow,
		sessions: sessions,
		clock:    calendar.SystemClock{},
		cost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp creates the account together with its empty profile and signs the
// new user in.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.clock.Now().UTC()
	account := &domain.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteAccountRepo(tx).Create(ctx, account); err != nil {
			return err
		}
		return repository.NewSQLiteProfileRepo(tx).Create(ctx, domain.NewProfile(account.ID, now))
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	if err := s.startSession(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.startSession(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) SignOut() error {
	return s.sessions.Clear()
}

// Current returns the signed-in session, or nil.
func (s *Service) Current() (*Session, error) {
	return s.sessions.Load()
}

func (s *Service) startSession(a *domain.Account) error {
	return s.sessions.Save(&Session{
		UserID:     a.ID,
		Email:      a.Email,
		SignedInAt: s.clock.Now().UTC(),
	})
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n") &&
		strings.Count(email, "@") == 1
}
