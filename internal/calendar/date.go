// Package calendar resolves civil dates in the application's reference
// timezone. All date-keyed records use these dates, never the machine's
// local wall clock.
package calendar

import (
	"fmt"
	"sync"
	"time"

	// Embedded zone database so the reference zone resolves identically
	// on machines without /usr/share/zoneinfo.
	_ "time/tzdata"
)

// ReferenceZone is the IANA name of the zone that defines "today".
const ReferenceZone = "America/Sao_Paulo"

// Layout is the storage and display format of a Date.
const Layout = "2006-01-02"

var loadReference = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		panic(fmt.Sprintf("calendar: loading %s: %v", ReferenceZone, err))
	}
	return loc
})

// ReferenceLocation returns the fixed reference timezone.
func ReferenceLocation() *time.Location {
	return loadReference()
}

// Date is a calendar day with no time-of-day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today converts now into loc and truncates it to a calendar date.
func Today(now time.Time, loc *time.Location) Date {
	return DateOf(now.In(loc))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParse is Parse for literals in tests and static tables.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// AddDays returns the date n calendar days after d (n may be negative).
// Arithmetic happens at noon UTC so no zone transition can skip a day.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Yesterday is AddDays(-1).
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// StartOfWeek returns the Monday on or before d.
func (d Date) StartOfWeek() Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
