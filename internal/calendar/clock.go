package calendar

import "time"

// Clock supplies the current instant. Services take a Clock instead of
// calling time.Now so tests can pin "today".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// TodayFrom resolves the reference date using clock.
func TodayFrom(clock Clock) Date {
	return Today(clock.Now(), ReferenceLocation())
}
