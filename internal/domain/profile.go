package domain

import (
	"fmt"
	"strings"
	"time"
)

type Profile struct {
	UserID           string
	Name             string
	Rhythm           Rhythm
	Consistency      Consistency
	SupportLevel     SupportLevel
	MorningPerson    bool
	MainGoal         Goal
	CurrentChallenge Challenge
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewProfile returns the empty profile created together with an account.
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:           userID,
		Rhythm:           RhythmModerate,
		Consistency:      ConsistencyStarting,
		SupportLevel:     SupportRegular,
		MorningPerson:    true,
		MainGoal:         GoalBalance,
		CurrentChallenge: ChallengeRoutine,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsOnboarded reports whether the questionnaire has been answered, which is
// signalled by a non-blank name.
func (p *Profile) IsOnboarded() bool {
	return p != nil && strings.TrimSpace(p.Name) != ""
}

// ProfilePatch is a partial update; nil fields are left unchanged.
type ProfilePatch struct {
	Name             *string
	Rhythm           *Rhythm
	Consistency      *Consistency
	SupportLevel     *SupportLevel
	MorningPerson    *bool
	MainGoal         *Goal
	CurrentChallenge *Challenge
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Rhythm == nil && p.Consistency == nil && p.SupportLevel == nil &&
		p.MorningPerson == nil && p.MainGoal == nil && p.CurrentChallenge == nil
}

// Validate checks every set field against its accepted values.
func (p ProfilePatch) Validate() error {
	if p.Name != nil && len(*p.Name) > 80 {
		return fmt.Errorf("name is longer than 80 characters")
	}
	if p.Rhythm != nil && !ValidRhythms[string(*p.Rhythm)] {
		return fmt.Errorf("invalid rhythm %q", *p.Rhythm)
	}
	if p.Consistency != nil && !ValidConsistencies[string(*p.Consistency)] {
		return fmt.Errorf("invalid consistency %q", *p.Consistency)
	}
	if p.SupportLevel != nil && !ValidSupportLevels[string(*p.SupportLevel)] {
		return fmt.Errorf("invalid support level %q", *p.SupportLevel)
	}
	if p.MainGoal != nil && !ValidGoals[string(*p.MainGoal)] {
		return fmt.Errorf("invalid goal %q", *p.MainGoal)
	}
	if p.CurrentChallenge != nil && !ValidChallenges[string(*p.CurrentChallenge)] {
		return fmt.Errorf("invalid challenge %q", *p.CurrentChallenge)
	}
	return nil
}

// Apply returns a copy of p with the patch merged in.
func (p Profile) Apply(patch ProfilePatch, now time.Time) Profile {
	p.Name = ValueOr(patch.Name, p.Name)
	p.Rhythm = ValueOr(patch.Rhythm, p.Rhythm)
	p.Consistency = ValueOr(patch.Consistency, p.Consistency)
	p.SupportLevel = ValueOr(patch.SupportLevel, p.SupportLevel)
	p.MorningPerson = ValueOr(patch.MorningPerson, p.MorningPerson)
	p.MainGoal = ValueOr(patch.MainGoal, p.MainGoal)
	p.CurrentChallenge = ValueOr(patch.CurrentChallenge, p.CurrentChallenge)
	if !patch.IsEmpty() {
		p.UpdatedAt = now
	}
	return p
}

// Fields flattens the set fields of the patch for audit logging.
func (p ProfilePatch) Fields() map[string]any {
	out := make(map[string]any)
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Rhythm != nil {
		out["rhythm"] = string(*p.Rhythm)
	}
	if p.Consistency != nil {
		out["consistency"] = string(*p.Consistency)
	}
	if p.SupportLevel != nil {
		out["support_level"] = string(*p.SupportLevel)
	}
	if p.MorningPerson != nil {
		out["morning_person"] = *p.MorningPerson
	}
	if p.MainGoal != nil {
		out["main_goal"] = string(*p.MainGoal)
	}
	if p.CurrentChallenge != nil {
		out["current_challenge"] = string(*p.CurrentChallenge)
	}
	return out
}
