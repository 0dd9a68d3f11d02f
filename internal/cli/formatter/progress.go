package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  85%. The fraction is
// percent of target, so it can exceed 1; the bar caps at full while the label
// keeps the real number. Coloring follows PaceColor.
func RenderProgress(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if width < 2 {
		width = 2
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	pct := frac * 100
	return fmt.Sprintf("[%s] %s", PaceColor(pct).Render(bar), fmt.Sprintf("%3.0f%%", pct))
}
