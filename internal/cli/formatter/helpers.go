package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate renders a production date like "Fri, Aug 28", with Today and
// Yesterday special-cased.
func HumanDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon, Jan 2")
}

// FormatLbs renders a weight with one decimal and unit, "18.5 lbs".
func FormatLbs(lbs float64) string {
	return fmt.Sprintf("%.1f lbs", lbs)
}

// FormatRate renders lbs per trimmer-hour with two decimals.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}

// FormatDelta renders a signed difference from target, colored by sign.
func FormatDelta(delta float64) string {
	text := fmt.Sprintf("%+.1f", delta)
	if delta >= 0 {
		return StyleGreen.Render(text)
	}
	return StyleRed.Render(text)
}

// FormatMoney renders a dollar amount, "$262.20".
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// CultivarBadge returns a purple-styled cultivar label, or a dimmed dash when
// none is recorded.
func CultivarBadge(cultivar string) string {
	if cultivar == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(cultivar)
}
