package domain

type Rhythm string

const (
	RhythmCalm     Rhythm = "calm"
	RhythmModerate Rhythm = "moderate"
	RhythmIntense  Rhythm = "intense"
)

type Consistency string

const (
	ConsistencyStarting    Consistency = "starting"
	ConsistencyBuilding    Consistency = "building"
	ConsistencyEstablished Consistency = "established"
)

type SupportLevel string

const (
	SupportMinimal   SupportLevel = "minimal"
	SupportRegular   SupportLevel = "regular"
	SupportIntensive SupportLevel = "intensive"
)

type Goal string

const (
	GoalEnergy     Goal = "energy"
	GoalLightness  Goal = "lightness"
	GoalBalance    Goal = "balance"
	GoalConfidence Goal = "confidence"
	GoalWeightLoss Goal = "weightloss"
)

type Challenge string

const (
	ChallengeRoutine    Challenge = "routine"
	ChallengeMotivation Challenge = "motivation"
	ChallengeKnowledge  Challenge = "knowledge"
	ChallengeTime       Challenge = "time"
)

type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodLow     Mood = "low"
)

type ActionType string

const (
	ActionMissionComplete    ActionType = "mission_complete"
	ActionFocusComplete      ActionType = "focus_complete"
	ActionCheckIn            ActionType = "checkin"
	ActionOnboardingComplete ActionType = "onboarding_complete"
	ActionNote               ActionType = "note"
)

// Canonical sets of accepted enum strings, mirrored by the CHECK
// constraints on the profiles table.
var (
	ValidRhythms       = map[string]bool{"calm": true, "moderate": true, "intense": true}
	ValidConsistencies = map[string]bool{"starting": true, "building": true, "established": true}
	ValidSupportLevels = map[string]bool{"minimal": true, "regular": true, "intensive": true}
	ValidGoals         = map[string]bool{
		"energy": true, "lightness": true, "balance": true,
		"confidence": true, "weightloss": true,
	}
	ValidChallenges = map[string]bool{"routine": true, "motivation": true, "knowledge": true, "time": true}
	ValidMoods      = map[string]bool{"great": true, "good": true, "neutral": true, "low": true}
)
