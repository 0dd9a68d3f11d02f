package scoreboard

import "github.com/RogueFF/shiftboard/internal/domain"

// HourRow is one slot of the day as the board displays it: the recorded
// entry's numbers with the slot's capacity multiplier and effective headcount
// already resolved.
type HourRow struct {
	TimeSlot string // label as recorded, not normalized

	Tops   float64
	Smalls float64

	// Trimmers is the effective headcount (override honored, including an
	// explicit zero). RawTrimmers is the count as recorded.
	Trimmers    float64
	RawTrimmers float64
	Buckers     float64

	Cultivar   string
	Multiplier float64
	Notes      string
}

// BuildOrderedRows merges the day's recorded entries with the standard slot
// schedule into one chronologically ordered row sequence. The candidate slot
// set is the union of the schedule and whatever slots were actually recorded,
// so a dynamic first slot like "7:44 AM – 8:00 AM" is kept. Standard slots
// with no entry are dropped, not zero-filled.
//
// Returns the ordered rows and the same rows keyed by normalized slot label.
// The input slice is never modified.
func BuildOrderedRows(entries []domain.ProductionEntry, sched Schedule) ([]HourRow, map[string]HourRow) {
	bySlot := make(map[string]HourRow, len(entries))
	for i := range entries {
		e := &entries[i]
		bySlot[NormalizeSlot(e.TimeSlot)] = HourRow{
			TimeSlot:    e.TimeSlot,
			Tops:        e.TopsLbs,
			Smalls:      e.SmallsLbs,
			Trimmers:    e.EffectiveHeadcount(),
			RawTrimmers: e.Trimmers,
			Buckers:     e.Buckers,
			Cultivar:    e.Cultivar,
			Multiplier:  sched.MultiplierFor(e.TimeSlot),
			Notes:       e.Notes,
		}
	}

	seen := make(map[string]bool, len(sched.StandardSlots)+len(entries))
	candidates := make([]string, 0, len(sched.StandardSlots)+len(entries))
	for _, slot := range sched.StandardSlots {
		norm := NormalizeSlot(slot)
		if !seen[norm] {
			seen[norm] = true
			candidates = append(candidates, norm)
		}
	}
	for i := range entries {
		norm := NormalizeSlot(entries[i].TimeSlot)
		if !seen[norm] {
			seen[norm] = true
			candidates = append(candidates, norm)
		}
	}

	rows := make([]HourRow, 0, len(bySlot))
	for _, slot := range SortSlotsChronologically(candidates) {
		if row, ok := bySlot[slot]; ok {
			rows = append(rows, row)
		}
	}
	return rows, bySlot
}
