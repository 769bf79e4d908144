package content

// MilestoneID identifies an achievement on the progress view.
type MilestoneID string

const (
	MilestoneFirstStep     MilestoneID = "first_step"
	MilestoneSevenDays     MilestoneID = "seven_days"
	MilestonePhaseComplete MilestoneID = "phase_complete"
	MilestoneThirtyDays    MilestoneID = "thirty_days"
)

type Milestone struct {
	ID          MilestoneID
	Title       string
	Description string
	Achieved    bool
}

// MilestoneFacts are the observations milestones are evaluated against.
type MilestoneFacts struct {
	CompletedDays     int  // rows with the mission completed
	LongestStreak     int  // best streak seen in stored rows, counting today if completed
	PhaseEndCompleted bool // a mission on day 10, 20 or 30 was completed
	CycleCompleted    bool // the mission on day 30 was completed
}

// Milestones evaluates every milestone in display order.
func Milestones(f MilestoneFacts) []Milestone {
	return []Milestone{
		{
			ID:          MilestoneFirstStep,
			Title:       "Primeiro passo",
			Description: "Você começou!",
			Achieved:    f.CompletedDays > 0,
		},
		{
			ID:          MilestoneSevenDays,
			Title:       "7 dias seguidos",
			Description: "Uma semana de constância",
			Achieved:    f.LongestStreak >= 7,
		},
		{
			ID:          MilestonePhaseComplete,
			Title:       "Fase completa",
			Description: "Terminou sua primeira fase do ciclo",
			Achieved:    f.PhaseEndCompleted,
		},
		{
			ID:          MilestoneThirtyDays,
			Title:       "30 dias",
			Description: "Um mês de transformação",
			Achieved:    f.CycleCompleted || f.LongestStreak >= 30,
		},
	}
}
