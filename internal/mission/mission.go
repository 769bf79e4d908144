// Package mission holds the static 30-day mission cycle and the pure
// functions that walk it. Nothing here performs I/O.
package mission

import (
	"errors"
	"fmt"
)

// CycleLength is the number of days in one mission cycle.
const CycleLength = 30

// ErrInvalidDayIndex is returned for a day outside [1, CycleLength].
var ErrInvalidDayIndex = errors.New("invalid mission day index")

type Phase string

const (
	PhaseAwareness Phase = "awareness"
	PhaseChoices   Phase = "choices"
	PhaseAutonomy  Phase = "autonomy"
)

// Label returns the display name of the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseAwareness:
		return "Consciência e observação"
	case PhaseChoices:
		return "Melhores escolhas"
	case PhaseAutonomy:
		return "Autonomia e constância"
	default:
		return string(p)
	}
}

type Mission struct {
	Day         int
	Title       string
	Description string
	Phase       Phase
}

func init() {
	if err := validateTable(table[:]); err != nil {
		panic(fmt.Sprintf("mission: %v", err))
	}
}

// validateTable checks that days are contiguous from 1 and that phases
// partition the cycle into thirds.
func validateTable(missions []Mission) error {
	if len(missions) != CycleLength {
		return fmt.Errorf("table has %d entries, want %d", len(missions), CycleLength)
	}
	for i, m := range missions {
		if m.Day != i+1 {
			return fmt.Errorf("entry %d has day %d, want %d", i, m.Day, i+1)
		}
		if m.Title == "" || m.Description == "" {
			return fmt.Errorf("day %d is missing display text", m.Day)
		}
		if want := expectedPhase(m.Day); m.Phase != want {
			return fmt.Errorf("day %d has phase %q, want %q", m.Day, m.Phase, want)
		}
	}
	return nil
}

func expectedPhase(day int) Phase {
	switch {
	case day <= 10:
		return PhaseAwareness
	case day <= 20:
		return PhaseChoices
	default:
		return PhaseAutonomy
	}
}

// ValidDay reports whether day lies inside the cycle.
func ValidDay(day int) bool {
	return day >= 1 && day <= CycleLength
}

// ForDay returns the mission for day.
func ForDay(day int) (Mission, error) {
	if !ValidDay(day) {
		return Mission{}, fmt.Errorf("day %d: %w", day, ErrInvalidDayIndex)
	}
	return table[day-1], nil
}

// PhaseForDay returns the phase recorded in the table for day.
func PhaseForDay(day int) (Phase, error) {
	m, err := ForDay(day)
	if err != nil {
		return "", err
	}
	return m.Phase, nil
}

// Advance returns the mission day that follows current, wrapping to 1
// after the last day of the cycle.
func Advance(current int) int {
	if current >= CycleLength {
		return 1
	}
	return current + 1
}

// All returns a copy of the full table in day order.
func All() []Mission {
	out := make([]Mission, CycleLength)
	copy(out, table[:])
	return out
}

// Upcoming returns up to n missions after day, stopping at the end of the
// cycle rather than wrapping.
func Upcoming(day, n int) []Mission {
	if !ValidDay(day) || n <= 0 {
		return nil
	}
	end := day + n
	if end > CycleLength {
		end = CycleLength
	}
	out := make([]Mission, 0, end-day)
	out = append(out, table[day:end]...)
	return out
}

// CycleProgress returns the fraction of the cycle reached on day, in (0, 1].
func CycleProgress(day int) float64 {
	if !ValidDay(day) {
		return 0
	}
	return float64(day) / float64(CycleLength)
}
