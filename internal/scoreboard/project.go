package scoreboard

// Projection is the end-of-day outlook: DailyGoal assumes remaining hours run
// at the target rate with the most recently known crew; ProjectedTotal uses
// the throughput actually observed so far instead.
type Projection struct {
	ProjectedTotal float64
	DailyGoal      float64
}

// ProjectDay computes the end-of-day projection from the ordered rows.
//
// Completed hours contribute their recorded output. The in-progress hour and
// every unworked standard slot contribute lastKnownTrimmers (or the current
// hour's own crew) at the observed rate; the goal side prices the same hours
// at the target rate. Standard slots are matched to recorded slots by end
// time, so a dynamic first slot stands in for the nominal one it replaced.
//
// With no production data and no known crew this degenerates to {totalSoFar, 0}.
func ProjectDay(rows []HourRow, idx HourIndices, targetRate, totalSoFar float64, sched Schedule) Projection {
	var totalLbs, effectiveHours, lastKnownTrimmers float64

	for i := 0; i <= idx.LastCompleted && i < len(rows); i++ {
		row := rows[i]
		if row.Tops > 0 && row.Trimmers > 0 {
			totalLbs += row.Tops
			effectiveHours += row.Trimmers * row.Multiplier
			lastKnownTrimmers = row.Trimmers
		}
	}

	// The hour in progress is fresher information than the last completed one.
	if idx.Current >= 0 && idx.Current < len(rows) && rows[idx.Current].Trimmers > 0 {
		lastKnownTrimmers = rows[idx.Current].Trimmers
	}

	currentRate := targetRate
	if effectiveHours > 0 {
		currentRate = totalLbs / effectiveHours
	}

	// Recorded slots keyed by end text, so schedule slots can be swapped for
	// the dynamic variant that actually ran.
	recordedByEnd := make(map[string]string)
	worked := make(map[string]HourRow, len(rows))
	for _, row := range rows {
		if row.TimeSlot == "" {
			continue
		}
		norm := NormalizeSlot(row.TimeSlot)
		worked[norm] = row
		if end := SlotEndText(norm); end != "" {
			recordedByEnd[end] = norm
		}
	}

	var dailyGoal, remaining float64
	for _, std := range sched.StandardSlots {
		slot := NormalizeSlot(std)
		if end := SlotEndText(slot); end != "" {
			if recorded, ok := recordedByEnd[end]; ok {
				slot = recorded
			}
		}
		mult := sched.MultiplierFor(slot)

		row, ok := worked[slot]
		switch {
		case ok && row.Tops > 0 && row.Trimmers > 0:
			dailyGoal += row.Trimmers * targetRate * mult
		case ok && row.Trimmers > 0 && row.Tops == 0:
			dailyGoal += row.Trimmers * targetRate * mult
			remaining += row.Trimmers * currentRate * mult
		default:
			dailyGoal += lastKnownTrimmers * targetRate * mult
			remaining += lastKnownTrimmers * currentRate * mult
		}
	}

	return Projection{
		ProjectedTotal: totalSoFar + remaining,
		DailyGoal:      dailyGoal,
	}
}
