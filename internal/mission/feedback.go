package mission

import (
	"math/rand/v2"
	"slices"
)

// Selector picks completion feedback. The zero value is not usable; build
// one with NewSelector.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector drawing from r. A nil r uses the global
// source.
func NewSelector(r *rand.Rand) *Selector {
	if r == nil {
		return &Selector{intn: rand.IntN}
	}
	return &Selector{intn: r.IntN}
}

// Message returns the feedback for completing day. The final day always
// yields CycleCompleteMessage; any other day yields a uniformly random
// encouragement.
func (s *Selector) Message(day int) string {
	if day == CycleLength {
		return CycleCompleteMessage
	}
	return encouragements[s.intn(len(encouragements))]
}

var defaultSelector = NewSelector(nil)

// SelectCompletionMessage is Message on a selector backed by the global
// random source.
func SelectCompletionMessage(day int) string {
	return defaultSelector.Message(day)
}

// Encouragements returns a copy of the encouragement pool.
func Encouragements() []string {
	return slices.Clone(encouragements)
}
