package app

import (
	"time"

	"github.com/RogueFF/shiftboard/internal/scoreboard"
)

// ScoreboardRequest asks for the live board of one production day.
type ScoreboardRequest struct {
	// Now overrides the clock, mainly for tests. Nil means time.Now().
	Now *time.Time
	// Date is the production day (YYYY-MM-DD). Empty means today.
	Date string
	// RateWindowDays is how many trailing production days feed the effective
	// target rate.
	RateWindowDays int
}

func NewScoreboardRequest() ScoreboardRequest {
	return ScoreboardRequest{RateWindowDays: 2}
}

// HourSummary is the board's close-up of a single hour.
type HourSummary struct {
	TimeSlot          string
	Lbs               float64
	Smalls            float64
	Trimmers          float64 // raw headcount
	EffectiveTrimmers float64
	Buckers           float64
	Multiplier        float64
	Target            float64
}

// HourlyRate is one completed productive hour, normalized to lbs per
// trimmer-hour for the pace list.
type HourlyRate struct {
	TimeSlot          string
	Rate              float64
	Target            float64
	Trimmers          float64
	EffectiveTrimmers float64
	Buckers           float64
	Lbs               float64
	Smalls            float64
	Multiplier        float64
	Notes             string
}

// ScoreboardResponse is the full metrics bundle the board renders.
type ScoreboardResponse struct {
	Date     string
	Cultivar string

	TargetRate float64

	Rows                   []scoreboard.HourRow
	LastCompletedHourIndex int
	CurrentHourIndex       int

	LastHour    *HourSummary
	CurrentHour *HourSummary

	TodayLbs        float64
	TodayTarget     float64
	TodayPercentage float64
	HoursLogged     int
	// EffectiveHours is break-adjusted hours logged (sum of multipliers over
	// producing hours), not trimmer-hours.
	EffectiveHours float64

	AvgPercentage  float64
	BestPercentage float64
	AvgDelta       float64
	BestDelta      float64
	Streak         int

	HourlyRates []HourlyRate

	ProjectedTotal float64
	DailyGoal      float64

	DataVersion int
}
