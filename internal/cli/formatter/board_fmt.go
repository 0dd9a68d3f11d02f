package formatter

import (
	"fmt"
	"strings"

	"github.com/RogueFF/shiftboard/internal/contract"
)

// FormatBoard renders the live scoreboard for one production day.
func FormatBoard(resp *contract.ScoreboardResponse) string {
	var b strings.Builder

	title := fmt.Sprintf("Scoreboard — %s", HumanDate(resp.Date))
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		CultivarBadge(resp.Cultivar),
		Dim("target"),
		Bold(FormatRate(resp.TargetRate)+" lbs/hr")))

	if len(resp.Rows) == 0 {
		b.WriteString(Dim("No entries logged yet.") + "\n")
		return b.String()
	}

	b.WriteString(hourTable(resp))
	b.WriteString("\n")
	b.WriteString(todayBox(resp))
	b.WriteString("\n")
	return b.String()
}

func hourTable(resp *contract.ScoreboardResponse) string {
	headers := []string{"HOUR", "TOPS", "SMALLS", "CREW", "WT", "RATE", "PACE"}

	targets := make(map[string]contract.HourlyRate, len(resp.HourlyRates))
	for _, hr := range resp.HourlyRates {
		targets[hr.TimeSlot] = hr
	}

	rows := make([][]string, 0, len(resp.Rows))
	for i, row := range resp.Rows {
		slot := row.TimeSlot
		if i == resp.CurrentHourIndex {
			slot = StyleBlue.Render(slot + " ◂")
		}

		crew := fmt.Sprintf("%g", row.RawTrimmers)
		if row.Trimmers != row.RawTrimmers {
			crew = fmt.Sprintf("%g (%.1f)", row.RawTrimmers, row.Trimmers)
		}
		if row.Buckers > 0 {
			crew += Dim(fmt.Sprintf(" +%gb", row.Buckers))
		}

		rate, pace := "", ""
		if hr, ok := targets[row.TimeSlot]; ok {
			rate = FormatRate(hr.Rate)
			target := hr.EffectiveTrimmers * hr.Target * hr.Multiplier
			if target > 0 {
				pct := hr.Lbs / target * 100
				pace = PaceColor(pct).Render(fmt.Sprintf("%.0f%%", pct))
			}
		} else if i == resp.CurrentHourIndex {
			pace = Dim("in progress")
		}

		rows = append(rows, []string{
			slot,
			fmt.Sprintf("%.1f", row.Tops),
			fmt.Sprintf("%.1f", row.Smalls),
			crew,
			fmt.Sprintf("%.2f", row.Multiplier),
			rate,
			pace,
		})
	}

	return RenderTable(headers, rows)
}

func todayBox(resp *contract.ScoreboardResponse) string {
	var b strings.Builder

	frac := 0.0
	if resp.TodayTarget > 0 {
		frac = resp.TodayLbs / resp.TodayTarget
	}
	b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
		RenderProgress(frac, 24),
		Bold(FormatLbs(resp.TodayLbs)),
		Dim("of"),
		FormatLbs(resp.TodayTarget)))

	b.WriteString(fmt.Sprintf("%s  avg %s  best %s  %s\n",
		PaceIndicator(resp.TodayPercentage),
		FormatDelta(resp.AvgDelta),
		FormatDelta(resp.BestDelta),
		streakLabel(resp.Streak)))

	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("projected"),
		Bold(FormatLbs(resp.ProjectedTotal)),
		Dim("goal"),
		FormatLbs(resp.DailyGoal)))

	return RenderBox("today", strings.TrimRight(b.String(), "\n"))
}

func streakLabel(streak int) string {
	if streak <= 0 {
		return Dim("no streak")
	}
	return StyleYellow.Render(fmt.Sprintf("🔥 %d", streak))
}
