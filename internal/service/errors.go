package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ritmo/internal/repository"
)

var (
	// ErrStoreUnavailable wraps any failure to read or write the record store.
	// Callers get no locally fabricated state when it is returned.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrNotAuthenticated is returned when there is no current user id.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidCheckIn is returned for out-of-range energy or unknown mood.
	ErrInvalidCheckIn = errors.New("invalid check-in")
	// ErrInvalidProfile is returned for a patch with unknown enum values or,
	// on onboarding, a blank name.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrNoDailyState is returned when an update is attempted without a
	// resolved daily state.
	ErrNoDailyState = errors.New("daily state not loaded")
)

// storeErr classifies a repository error. Missing rows keep their
// repository.ErrNotFound identity; everything else is a store failure.
func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
