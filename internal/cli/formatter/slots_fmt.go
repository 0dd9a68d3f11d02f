package formatter

import (
	"fmt"

	"github.com/RogueFF/shiftboard/internal/scoreboard"
)

// FormatSlots renders the shift schedule: every standard slot with its
// capacity multiplier and the break that explains it.
func FormatSlots(sched scoreboard.Schedule) string {
	headers := []string{"SLOT", "WEIGHT", ""}
	rows := make([][]string, 0, len(sched.StandardSlots))
	for _, slot := range sched.StandardSlots {
		mult := sched.MultiplierFor(slot)
		note := ""
		if mult < 1.0 {
			note = Dim("break-adjusted")
		}
		rows = append(rows, []string{slot, fmt.Sprintf("%.2f", mult), note})
	}
	return Header("shift schedule") + "\n" + RenderTable(headers, rows)
}
