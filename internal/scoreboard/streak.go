package scoreboard

// streakThresholdPct is the hour-performance bar for keeping a streak alive.
// Exactly 90% counts.
const streakThresholdPct = 90.0

// Streak returns the length of the most recent run of consecutive hours at or
// above 90% of target, scanning forward from the start of the day through
// lastCompleted. Rows with zero headcount are skipped outright — no
// increment, no reset — so an unstaffed hour neither breaks a streak nor
// divides by zero.
//
// The result is the run ending wherever the scan last succeeded, which is not
// always the day's longest run and not necessarily one still alive at
// lastCompleted: a below-bar hour resets the counter but leaves the last
// recorded run standing. The board counts it that way on purpose.
func Streak(rows []HourRow, lastCompleted int, targetRate float64) int {
	streak := 0
	run := 0
	for i := 0; i <= lastCompleted && i < len(rows); i++ {
		row := rows[i]
		if row.Trimmers == 0 {
			continue
		}
		hourTarget := row.Trimmers * targetRate * row.Multiplier
		pct := 0.0
		if hourTarget > 0 {
			pct = row.Tops / hourTarget * 100
		}
		if pct >= streakThresholdPct {
			run++
			streak = run
		} else {
			run = 0
		}
	}
	return streak
}
