package scoreboard

import (
	"testing"

	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMultiplierFor_TableHits(t *testing.T) {
	sched := DefaultSchedule()

	assert.Equal(t, 0.83, sched.MultiplierFor("9:00 AM – 10:00 AM"))
	assert.Equal(t, 0.5, sched.MultiplierFor("12:30 PM – 1:00 PM"))
	assert.Equal(t, 0.33, sched.MultiplierFor("4:00 PM – 4:30 PM"))
	assert.Equal(t, 1.0, sched.MultiplierFor("7:00 AM – 8:00 AM"))
}

func TestMultiplierFor_TableCoversNonStandardVariants(t *testing.T) {
	sched := DefaultSchedule()

	// These live in the table but not in the standard slot list.
	assert.Equal(t, 0.5, sched.MultiplierFor("2:30 PM – 3:00 PM"))
	assert.Equal(t, 0.5, sched.MultiplierFor("3:00 PM – 3:30 PM"))
	for _, std := range sched.StandardSlots {
		assert.NotEqual(t, "2:30 PM – 3:00 PM", std)
	}
}

func TestMultiplierFor_DashInvariant(t *testing.T) {
	sched := DefaultSchedule()
	for _, label := range []string{
		"9:00 AM - 10:00 AM",
		"9:00 AM – 10:00 AM",
		"9:00 AM — 10:00 AM",
	} {
		assert.Equal(t, 0.83, sched.MultiplierFor(label), "multiplier for %q", label)
	}
	for _, label := range []string{
		"7:44 AM - 8:00 AM",
		"7:44 AM – 8:00 AM",
		"7:44 AM — 8:00 AM",
	} {
		assert.InDelta(t, 16.0/60.0, sched.MultiplierFor(label), 1e-9, "multiplier for %q", label)
	}
}

func TestMultiplierFor_DynamicSlotComputesFromDuration(t *testing.T) {
	sched := DefaultSchedule()

	// 16 productive minutes, no break overlap.
	assert.InDelta(t, 16.0/60.0, sched.MultiplierFor("7:44 AM – 8:00 AM"), 1e-9)

	// 90 minutes spanning the full 30-minute lunch.
	assert.InDelta(t, 1.0, sched.MultiplierFor("11:00 AM – 12:30 PM"), 1e-9)

	// 35 minutes clipping the first 5 minutes of the 9:00 break.
	assert.InDelta(t, 0.5, sched.MultiplierFor("8:30 AM – 9:05 AM"), 1e-9)
}

func TestMultiplierFor_SafeFallbacks(t *testing.T) {
	sched := DefaultSchedule()

	assert.Equal(t, 1.0, sched.MultiplierFor(""))
	assert.Equal(t, 1.0, sched.MultiplierFor("   "))
	assert.Equal(t, 1.0, sched.MultiplierFor("first thing – whenever"))
	assert.Equal(t, 1.0, sched.MultiplierFor("9:00 AM"), "missing end time")
	assert.Equal(t, 1.0, sched.MultiplierFor("3:00 PM – 2:00 PM"), "end before start")
}

func TestMultiplierFor_TableZeroIsAValue(t *testing.T) {
	sched := Schedule{
		Multipliers: map[string]float64{"5:00 PM – 6:00 PM": 0},
	}
	assert.Equal(t, 0.0, sched.MultiplierFor("5:00 PM – 6:00 PM"),
		"a configured zero must win over the dynamic computation")
}

func TestMultiplierFor_CustomBreaks(t *testing.T) {
	sched := Schedule{
		Breaks: []domain.BreakWindow{{Hour: 10, Minute: 0, Duration: 20}},
	}
	// 60 minutes minus the whole 20-minute break.
	assert.InDelta(t, 40.0/60.0, sched.MultiplierFor("9:30 AM – 10:30 AM"), 1e-9)
}

func TestWithMultipliers_OverlaysWithoutMutating(t *testing.T) {
	base := DefaultSchedule()
	custom := base.WithMultipliers(map[string]float64{"9:00 AM – 10:00 AM": 0.75})

	assert.Equal(t, 0.75, custom.MultiplierFor("9:00 AM – 10:00 AM"))
	assert.Equal(t, 0.83, base.MultiplierFor("9:00 AM – 10:00 AM"),
		"overlay must not touch the base table")
	assert.Equal(t, 0.5, custom.MultiplierFor("12:30 PM – 1:00 PM"),
		"untouched entries carry over")
}
