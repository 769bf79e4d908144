package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	actions  ActionLogger
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, actions ActionLogger, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		actions:  actions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storeErr("loading profile", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, userID string, patch domain.ProfilePatch) (p *domain.Profile, err error) {
	fields := map[string]any{"user_id": userID}
	defer observe(ctx, s.observer, "update-profile", time.Now(), &err, fields)
	return s.update(ctx, userID, patch, fields)
}

// CompleteOnboarding stores the questionnaire answers. The name is required
// because a non-blank name is what marks the profile as onboarded.
func (s *profileService) CompleteOnboarding(ctx context.Context, userID string, answers domain.ProfilePatch) (p *domain.Profile, err error) {
	fields := map[string]any{"user_id": userID}
	defer observe(ctx, s.observer, "complete-onboarding", time.Now(), &err, fields)

	if answers.Name == nil || strings.TrimSpace(*answers.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	answers.Name = domain.Ptr(strings.TrimSpace(*answers.Name))
	p, err = s.update(ctx, userID, answers, fields)
	if err != nil {
		return nil, err
	}
	s.actions.Log(ctx, userID, domain.ActionOnboardingComplete, answers.Fields())
	return p, nil
}

func (s *profileService) update(ctx context.Context, userID string, patch domain.ProfilePatch, fields map[string]any) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	for k := range patch.Fields() {
		fields["set_"+k] = true
	}
	if err := s.profiles.ApplyPatch(ctx, userID, patch); err != nil {
		return nil, storeErr("updating profile", err)
	}
	return s.Get(ctx, userID)
}
