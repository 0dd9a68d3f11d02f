package importer

import (
	"strconv"
	"time"

	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/RogueFF/shiftboard/internal/scoreboard"
	"github.com/google/uuid"
)

// Convert transforms validated day-sheet rows into production entries ready
// for persistence. Call ValidateRows first; Convert assumes the rows parse.
func Convert(rows []RowImport) []*domain.ProductionEntry {
	now := time.Now().UTC()

	entries := make([]*domain.ProductionEntry, 0, len(rows))
	for _, row := range rows {
		e := &domain.ProductionEntry{
			ID:        uuid.New().String(),
			Date:      row.Date,
			TimeSlot:  scoreboard.NormalizeSlot(row.TimeSlot),
			Cultivar:  row.Cultivar,
			TopsLbs:   parseFloat(row.TopsLbs),
			SmallsLbs: parseFloat(row.SmallsLbs),
			Trimmers:  parseFloat(row.Trimmers),
			Buckers:   parseFloat(row.Buckers),
			Notes:     row.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if row.EffectiveTrimmers != "" {
			e.EffectiveTrimmers = domain.Float64Ptr(parseFloat(row.EffectiveTrimmers))
		}
		entries = append(entries, e)
	}
	return entries
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	n, _ := strconv.ParseFloat(s, 64)
	return n
}
