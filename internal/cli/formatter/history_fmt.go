package formatter

import (
	"fmt"
	"strings"

	"github.com/RogueFF/shiftboard/internal/contract"
)

// FormatHistory renders the trailing-days summary table with labor cost.
func FormatHistory(days []contract.DaySummary) string {
	var b strings.Builder
	b.WriteString(Header("history"))
	b.WriteString("\n")

	if len(days) == 0 {
		b.WriteString(Dim("No production recorded in this window.") + "\n")
		return b.String()
	}

	headers := []string{"DAY", "TOPS", "SMALLS", "HOURS", "RATE", "LABOR", "$/LB"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			HumanDate(d.Date),
			fmt.Sprintf("%.1f", d.Tops),
			fmt.Sprintf("%.1f", d.Smalls),
			fmt.Sprintf("%d", d.HoursLogged),
			FormatRate(d.AvgRate),
			FormatMoney(d.LaborCost),
			FormatMoney(d.CostPerLb),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
