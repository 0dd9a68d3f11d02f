package repository

import (
	"context"

	"github.com/RogueFF/shiftboard/internal/domain"
)

// RateSample is the slice of an entry the effective-target-rate calculation
// reads: productive slots only, joined across days.
type RateSample struct {
	Date     string
	TimeSlot string
	Tops     float64
	Trimmers float64
}

// DayTotals is one day's aggregate line output.
type DayTotals struct {
	Date         string
	Tops         float64
	Smalls       float64
	TrimmerHours float64
	BuckerHours  float64
	HoursLogged  int // slots that were both staffed and productive
}

type EntryRepo interface {
	// Upsert inserts the entry or, when the (date, slot) pair already exists,
	// replaces its recorded values in place.
	Upsert(ctx context.Context, e *domain.ProductionEntry) error
	GetByDateSlot(ctx context.Context, date, slot string) (*domain.ProductionEntry, error)
	ListByDate(ctx context.Context, date string) ([]*domain.ProductionEntry, error)
	// RateSamples returns productive (tops and trimmers both > 0) slots on or
	// after cutoff, oldest first. A non-empty cultivar filters to that cultivar.
	RateSamples(ctx context.Context, cutoff, cultivar string) ([]RateSample, error)
	// DailyTotals returns per-day aggregates on or after cutoff, oldest first.
	DailyTotals(ctx context.Context, cutoff string) ([]DayTotals, error)
	Delete(ctx context.Context, date, slot string) error
}

type ConfigRepo interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	GetFloat(ctx context.Context, key string) (float64, bool, error)
	// GetFloatMap reads a JSON-typed config value holding a string-to-number
	// object, such as the multiplier table override.
	GetFloatMap(ctx context.Context, key string) (map[string]float64, bool, error)
	Set(ctx context.Context, key, value, valueType, updatedBy string) error

	// DataVersion reads the scoreboard change counter; BumpDataVersion
	// increments it. Watchers poll the counter instead of diffing rows.
	DataVersion(ctx context.Context) (int, error)
	BumpDataVersion(ctx context.Context) error
}
