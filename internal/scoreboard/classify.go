package scoreboard

// HourIndices locates the day's position in the ordered row sequence.
// Both indices are -1 when no row qualifies.
type HourIndices struct {
	// LastCompleted is the most recent row with production on the board.
	LastCompleted int
	// Current is the most recent row that is staffed but has no production
	// yet — the hour in progress.
	Current int
}

// ClassifyHours scans the ordered rows once and returns the last-completed
// and in-progress hour indices. When several rows qualify the later one wins;
// the scan deliberately keeps overwriting so that a staffed-but-idle hour
// after a gap is reported, not the first one found.
func ClassifyHours(rows []HourRow) HourIndices {
	idx := HourIndices{LastCompleted: -1, Current: -1}
	for i, row := range rows {
		switch {
		case row.Tops > 0:
			idx.LastCompleted = i
		case row.Trimmers > 0 && row.Tops == 0:
			idx.Current = i
		}
	}
	return idx
}
