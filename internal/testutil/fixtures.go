package testutil

import (
	"time"

	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/google/uuid"
)

// Entry builds a production entry with sensible defaults for tests.
func Entry(date, slot string, tops, trimmers float64) *domain.ProductionEntry {
	now := time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC)
	return &domain.ProductionEntry{
		ID:        uuid.New().String(),
		Date:      date,
		TimeSlot:  slot,
		Cultivar:  "Lifter",
		TopsLbs:   tops,
		Trimmers:  trimmers,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
