package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRow(tops, trimmers float64) HourRow {
	return HourRow{Tops: tops, Trimmers: trimmers, Multiplier: 1.0}
}

func TestClassifyHours_Empty(t *testing.T) {
	idx := ClassifyHours(nil)
	assert.Equal(t, -1, idx.LastCompleted)
	assert.Equal(t, -1, idx.Current)
}

func TestClassifyHours_TypicalDay(t *testing.T) {
	rows := []HourRow{
		makeRow(20, 4),
		makeRow(22, 4),
		makeRow(18, 4),
		makeRow(0, 4), // staffed, nothing weighed in yet
	}

	idx := ClassifyHours(rows)
	assert.Equal(t, 2, idx.LastCompleted)
	assert.Equal(t, 3, idx.Current)
}

func TestClassifyHours_AllProduced(t *testing.T) {
	rows := []HourRow{makeRow(20, 4), makeRow(22, 4), makeRow(18, 4)}

	idx := ClassifyHours(rows)
	assert.Equal(t, len(rows)-1, idx.LastCompleted)
	assert.Equal(t, -1, idx.Current, "no staffed-but-idle hour")
}

func TestClassifyHours_LastMatchWins(t *testing.T) {
	rows := []HourRow{
		makeRow(0, 4),  // idle hour before production started
		makeRow(20, 4),
		makeRow(0, 4),  // idle gap
		makeRow(15, 4),
		makeRow(0, 3),  // the hour actually in progress
	}

	idx := ClassifyHours(rows)
	assert.Equal(t, 3, idx.LastCompleted, "latest producing row wins")
	assert.Equal(t, 4, idx.Current, "latest staffed idle row wins, not the first")
}

func TestClassifyHours_UnstaffedRowsIgnored(t *testing.T) {
	rows := []HourRow{
		makeRow(0, 0),
		makeRow(0, 0),
	}

	idx := ClassifyHours(rows)
	assert.Equal(t, -1, idx.LastCompleted)
	assert.Equal(t, -1, idx.Current)
}
