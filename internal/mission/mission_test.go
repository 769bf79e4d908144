package mission

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_IncrementsAndWraps(t *testing.T) {
	for day := 1; day <= CycleLength; day++ {
		want := day + 1
		if day == CycleLength {
			want = 1
		}
		assert.Equal(t, want, Advance(day), "Advance(%d)", day)
	}
}

func TestAdvance_OutOfRangeHighWraps(t *testing.T) {
	assert.Equal(t, 1, Advance(31))
}

func TestPhaseForDay_PartitionsCycle(t *testing.T) {
	for day := 1; day <= CycleLength; day++ {
		phase, err := PhaseForDay(day)
		require.NoError(t, err)
		switch {
		case day <= 10:
			assert.Equal(t, PhaseAwareness, phase, "day %d", day)
		case day <= 20:
			assert.Equal(t, PhaseChoices, phase, "day %d", day)
		default:
			assert.Equal(t, PhaseAutonomy, phase, "day %d", day)
		}
	}
}

func TestForDay_ReturnsMatchingEntry(t *testing.T) {
	m, err := ForDay(1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Day)
	assert.Equal(t, "Água ao acordar", m.Title)

	m, err = ForDay(30)
	require.NoError(t, err)
	assert.Equal(t, "Reconhecer a constância", m.Title)
	assert.Equal(t, PhaseAutonomy, m.Phase)
}

func TestForDay_OutOfRange(t *testing.T) {
	for _, day := range []int{-1, 0, 31, 100} {
		_, err := ForDay(day)
		assert.ErrorIs(t, err, ErrInvalidDayIndex, "day %d", day)
		_, err = PhaseForDay(day)
		assert.ErrorIs(t, err, ErrInvalidDayIndex, "day %d", day)
	}
}

func TestValidateTable_AcceptsShippedTable(t *testing.T) {
	assert.NoError(t, validateTable(All()))
}

func TestValidateTable_RejectsBrokenPartition(t *testing.T) {
	broken := All()
	broken[10].Phase = PhaseAwareness
	err := validateTable(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 11")
}

func TestValidateTable_RejectsGap(t *testing.T) {
	broken := All()
	broken[4].Day = 6
	assert.Error(t, validateTable(broken))
}

func TestValidateTable_RejectsShortTable(t *testing.T) {
	assert.Error(t, validateTable(All()[:29]))
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "changed"
	second := All()
	assert.Equal(t, "Água ao acordar", second[0].Title)
}

func TestUpcoming(t *testing.T) {
	got := Upcoming(17, 3)
	want := []Mission{table[17], table[18], table[19]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upcoming(17, 3) mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, Upcoming(29, 3), 1)
	assert.Empty(t, Upcoming(30, 3))
	assert.Nil(t, Upcoming(0, 3))
}

func TestCycleProgress(t *testing.T) {
	assert.InDelta(t, 1.0/30, CycleProgress(1), 1e-9)
	assert.InDelta(t, 0.5, CycleProgress(15), 1e-9)
	assert.InDelta(t, 1.0, CycleProgress(30), 1e-9)
	assert.Zero(t, CycleProgress(0))
}

func TestSelectCompletionMessage_FinalDayIsExact(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.Equal(t, CycleCompleteMessage, SelectCompletionMessage(30))
	}
	assert.Equal(t, "Ciclo concluído. Um novo ciclo começa amanhã. Continue no seu ritmo.", SelectCompletionMessage(30))
}

func TestSelectCompletionMessage_OtherDaysDrawFromPool(t *testing.T) {
	pool := Encouragements()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		day := i%29 + 1
		msg := SelectCompletionMessage(day)
		assert.Contains(t, pool, msg)
		assert.NotEqual(t, CycleCompleteMessage, msg)
		seen[msg] = true
	}
	assert.Greater(t, len(seen), 1, "selection should not be degenerate")
}

func TestSelector_SeededIsReproducible(t *testing.T) {
	a := NewSelector(rand.New(rand.NewPCG(7, 11)))
	b := NewSelector(rand.New(rand.NewPCG(7, 11)))
	for day := 1; day < CycleLength; day++ {
		assert.Equal(t, a.Message(day), b.Message(day))
	}
}

func TestPhase_Label(t *testing.T) {
	assert.Equal(t, "Consciência e observação", PhaseAwareness.Label())
	assert.Equal(t, "Melhores escolhas", PhaseChoices.Label())
	assert.Equal(t, "Autonomia e constância", PhaseAutonomy.Label())
	assert.Equal(t, "other", Phase("other").Label())
}
