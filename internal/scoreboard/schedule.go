package scoreboard

import "github.com/RogueFF/shiftboard/internal/domain"

// Schedule is the shift configuration the engine computes against: the fixed
// slot list for a nominal day, the multiplier lookup table, and the break
// windows. It is passed in explicitly so alternate schedules are testable;
// nothing in this package holds schedule state.
//
// StandardSlots and Multipliers are two distinct sets with partial overlap:
// the table carries entries for slot variants that are not part of the
// nominal day (the half-hour lunch-return and early-release slots). Do not
// merge them.
type Schedule struct {
	StandardSlots []string
	Multipliers   map[string]float64
	Breaks        []domain.BreakWindow
}

// DefaultSchedule returns the production-floor schedule: a 7:00 AM to 4:30 PM
// shift with a 10-minute break at 9:00, a 30-minute lunch at noon, and
// 10-minute breaks at 2:30 and 4:20 (cleanup).
func DefaultSchedule() Schedule {
	return Schedule{
		StandardSlots: []string{
			"7:00 AM – 8:00 AM",
			"8:00 AM – 9:00 AM",
			"9:00 AM – 10:00 AM",
			"10:00 AM – 11:00 AM",
			"11:00 AM – 12:00 PM",
			"12:30 PM – 1:00 PM",
			"1:00 PM – 2:00 PM",
			"2:00 PM – 3:00 PM",
			"3:00 PM – 4:00 PM",
			"4:00 PM – 4:30 PM",
		},
		Multipliers: map[string]float64{
			"7:00 AM – 8:00 AM":   1.0,
			"8:00 AM – 9:00 AM":   1.0,
			"9:00 AM – 10:00 AM":  0.83,
			"10:00 AM – 11:00 AM": 1.0,
			"11:00 AM – 12:00 PM": 1.0,
			"12:30 PM – 1:00 PM":  0.5,
			"1:00 PM – 2:00 PM":   1.0,
			"2:00 PM – 3:00 PM":   1.0,
			"2:30 PM – 3:00 PM":   0.5,
			"3:00 PM – 4:00 PM":   0.83,
			"4:00 PM – 4:30 PM":   0.33,
			"3:00 PM – 3:30 PM":   0.5,
		},
		Breaks: []domain.BreakWindow{
			{Hour: 9, Minute: 0, Duration: 10},
			{Hour: 12, Minute: 0, Duration: 30},
			{Hour: 14, Minute: 30, Duration: 10},
			{Hour: 16, Minute: 20, Duration: 10},
		},
	}
}

// WithMultipliers returns a copy of the schedule with the given table entries
// laid over the existing multiplier table. Used for deployment overrides kept
// in system_config.
func (s Schedule) WithMultipliers(overrides map[string]float64) Schedule {
	if len(overrides) == 0 {
		return s
	}
	merged := make(map[string]float64, len(s.Multipliers)+len(overrides))
	for k, v := range s.Multipliers {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	s.Multipliers = merged
	return s
}
