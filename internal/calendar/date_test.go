package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceLocation_Name(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", ReferenceLocation().String())
}

func TestToday_BeforeMidnightInReferenceZone(t *testing.T) {
	// 02:30 UTC is 23:30 of the previous day in São Paulo (UTC-3).
	now := time.Date(2026, 3, 10, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, MustParse("2026-03-09"), Today(now, ReferenceLocation()))
}

func TestToday_AtMidnightInReferenceZone(t *testing.T) {
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, MustParse("2026-03-10"), Today(now, ReferenceLocation()))
}

func TestToday_IndependentOfInstantZone(t *testing.T) {
	utc := time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC)
	tokyo := utc.In(time.FixedZone("JST", 9*3600))
	honolulu := utc.In(time.FixedZone("HST", -10*3600))

	want := MustParse("2026-03-09")
	assert.Equal(t, want, Today(utc, ReferenceLocation()))
	assert.Equal(t, want, Today(tokyo, ReferenceLocation()))
	assert.Equal(t, want, Today(honolulu, ReferenceLocation()))
}

func TestToday_IndependentOfProcessLocalZone(t *testing.T) {
	saved := time.Local
	t.Cleanup(func() { time.Local = saved })

	now := time.Date(2026, 7, 1, 1, 0, 0, 0, time.UTC)
	time.Local = time.FixedZone("Far", 14*3600)
	first := Today(now, ReferenceLocation())
	time.Local = time.UTC
	second := Today(now, ReferenceLocation())

	assert.Equal(t, MustParse("2026-06-30"), first)
	assert.Equal(t, first, second)
}

func TestAddDays_CrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, MustParse("2025-12-31"), MustParse("2026-01-01").Yesterday())
	assert.Equal(t, MustParse("2024-02-29"), MustParse("2024-03-01").Yesterday())
	assert.Equal(t, MustParse("2026-03-01"), MustParse("2026-02-28").AddDays(1))
	assert.Equal(t, MustParse("2026-01-31"), MustParse("2026-01-01").AddDays(30))
}

func TestParse_RoundTripsString(t *testing.T) {
	d, err := Parse("2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", d.String())
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, err := Parse("15/10/2026")
	assert.Error(t, err)
}

func TestStartOfWeek_IsMonday(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-10-12", "2026-10-12"}, // Monday
		{"2026-10-15", "2026-10-12"}, // Thursday
		{"2026-10-18", "2026-10-12"}, // Sunday
		{"2026-01-01", "2025-12-29"}, // Thursday across year boundary
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := MustParse(tt.in).StartOfWeek()
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestBefore(t *testing.T) {
	assert.True(t, MustParse("2025-12-31").Before(MustParse("2026-01-01")))
	assert.True(t, MustParse("2026-01-31").Before(MustParse("2026-02-01")))
	assert.False(t, MustParse("2026-02-01").Before(MustParse("2026-02-01")))
	assert.False(t, MustParse("2026-02-02").Before(MustParse("2026-02-01")))
}

func TestTodayFrom_UsesClock(t *testing.T) {
	clock := FixedClock{At: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, MustParse("2026-10-15"), TodayFrom(clock))
}
