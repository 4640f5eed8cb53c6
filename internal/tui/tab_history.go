package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/tui/components"
	"github.com/theirongolddev/wordpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	goal := a.viewedGoal()
	if goal == nil {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + empty.Render("  No goals yet. Press n to create one.")
	}
	if len(a.history) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + empty.Render("  No entries yet. Press a to log a snapshot.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Visible window, scrolled by j/k
	rowsAvail := contentH - 4 // card border + header line
	if rowsAvail < 3 {
		rowsAvail = 3
	}
	offset := a.historyScroll
	if offset > len(a.history)-rowsAvail {
		offset = len(a.history) - rowsAvail
	}
	if offset < 0 {
		offset = 0
	}
	window := a.history[offset:]
	if len(window) > rowsAvail {
		window = window[:rowsAvail]
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %-4s %10s %12s", "Date", "Day", "Added", "Total")))
	body.WriteString("\n")
	for _, p := range window {
		gain := gainStyle
		if p.DailyWords == 0 {
			gain = zeroStyle
		}
		fmt.Fprintf(&body, "%s %s %s %s\n",
			dateStyle.Render(fmt.Sprintf("%-14s", cli.FormatDate(p.Date))),
			dayStyle.Render(fmt.Sprintf("%-4s", cli.FormatDayOfWeek(int(p.Date.Weekday())))),
			gain.Render(fmt.Sprintf("%10s", cli.FormatSignedWords(p.DailyWords))),
			totalStyle.Render(fmt.Sprintf("%12s", cli.FormatNumber(int64(p.TotalWords)))))
	}

	title := fmt.Sprintf("History — %d days", len(a.history))
	if offset > 0 {
		title += fmt.Sprintf(" (scrolled %d)", offset)
	}
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw)
}
