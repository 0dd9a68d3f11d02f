package scoreboard

import "strings"

// MultiplierFor returns the break-adjusted fraction of an hour the given slot
// represents. Standard slots resolve through the lookup table; dynamic slots
// (irregular starts, partial hours) compute from their parsed duration minus
// any overlapping break minutes. Unparseable or empty input falls back to 1.0
// — a bad label must never take the board down, so this never errors.
func (s Schedule) MultiplierFor(slot string) float64 {
	trimmed := strings.TrimSpace(slot)
	if trimmed == "" {
		return 1.0
	}
	// Table lookups are presence checks: a configured 0 is a valid multiplier.
	if m, ok := s.Multipliers[trimmed]; ok {
		return m
	}
	norm := NormalizeSlot(trimmed)
	if m, ok := s.Multipliers[norm]; ok {
		return m
	}

	start, end, ok := SlotBounds(norm)
	if !ok || end <= start {
		return 1.0
	}
	remaining := end - start - s.breakMinutesWithin(start, end)
	return float64(remaining) / 60.0
}

// breakMinutesWithin sums the minutes of every configured break that overlaps
// the interval [start, end).
func (s Schedule) breakMinutesWithin(start, end int) int {
	total := 0
	for _, b := range s.Breaks {
		overlapStart := max(start, b.StartMinutes())
		overlapEnd := min(end, b.EndMinutes())
		if overlapEnd > overlapStart {
			total += overlapEnd - overlapStart
		}
	}
	return total
}
