package domain

import "time"

// ProductionEntry is one recorded hour of line output: what a crew produced
// during a single time slot on a single day. Slot labels are stored exactly as
// entered ("7:00 AM – 8:00 AM"); normalization happens in the scoreboard
// engine, not here.
type ProductionEntry struct {
	ID       string
	Date     string // YYYY-MM-DD
	TimeSlot string
	Cultivar string

	TopsLbs   float64
	SmallsLbs float64

	// Trimmers is the raw headcount on the line. EffectiveTrimmers, when set,
	// overrides it for target math — an explicit zero is a real value (crew
	// pulled off the line mid-hour), so this stays a pointer.
	Trimmers          float64
	EffectiveTrimmers *float64
	Buckers           float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveHeadcount returns the trimmer count that target math should use.
func (e *ProductionEntry) EffectiveHeadcount() float64 {
	return Float64FromPtrWithDefault(e.Trimmers, e.EffectiveTrimmers)
}

// BreakWindow is a recurring unpaid interval in the production day. Any
// overlap with a time slot reduces that slot's productive minutes.
type BreakWindow struct {
	Hour     int
	Minute   int
	Duration int // minutes
}

// StartMinutes returns the break start as minutes since midnight.
func (b BreakWindow) StartMinutes() int {
	return b.Hour*60 + b.Minute
}

// EndMinutes returns the break end as minutes since midnight.
func (b BreakWindow) EndMinutes() int {
	return b.StartMinutes() + b.Duration
}
