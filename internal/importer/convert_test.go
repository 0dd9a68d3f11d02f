package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsEntries(t *testing.T) {
	rows := []RowImport{
		{
			Line: 2, Date: "2026-08-27", TimeSlot: "7:00 AM - 8:00 AM", Cultivar: "Lifter",
			TopsLbs: "20", SmallsLbs: "2", Trimmers: "4", Buckers: "1", Notes: "slow start",
		},
		{
			Line: 3, Date: "2026-08-27", TimeSlot: "12:30 PM - 1:00 PM", Cultivar: "Lifter",
			TopsLbs: "8", Trimmers: "6", EffectiveTrimmers: "4.5",
		},
	}

	entries := Convert(rows)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2026-08-27", first.Date)
	assert.Equal(t, "7:00 AM – 8:00 AM", first.TimeSlot, "slot separator is normalized on import")
	assert.InDelta(t, 20.0, first.TopsLbs, 1e-9)
	assert.InDelta(t, 2.0, first.SmallsLbs, 1e-9)
	assert.InDelta(t, 1.0, first.Buckers, 1e-9)
	assert.Equal(t, "slow start", first.Notes)
	assert.Nil(t, first.EffectiveTrimmers)
	assert.False(t, first.CreatedAt.IsZero())

	second := entries[1]
	require.NotNil(t, second.EffectiveTrimmers)
	assert.InDelta(t, 4.5, *second.EffectiveTrimmers, 1e-9)
}
