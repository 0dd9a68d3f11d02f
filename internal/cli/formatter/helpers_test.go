package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.Equal(t, "Today", HumanDate(today))
	assert.Equal(t, "Yesterday", HumanDate(yesterday))
	assert.Equal(t, "Tue, Mar 3", HumanDate("2026-03-03"))
	assert.Equal(t, "not-a-date", HumanDate("not-a-date"))
}

func TestFormatDelta_SignAndColor(t *testing.T) {
	assert.Contains(t, FormatDelta(2.5), "+2.5")
	assert.Contains(t, FormatDelta(-1.2), "-1.2")
}

func TestRenderProgress_CapsBarNotLabel(t *testing.T) {
	out := RenderProgress(1.25, 8)
	assert.Contains(t, out, "125%")
	assert.NotContains(t, out, emptyBlock)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"xx", "y"}})
	assert.Contains(t, out, "xx")
	assert.Contains(t, out, "LONGER")
}
