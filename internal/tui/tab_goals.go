package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/pace"
	"github.com/theirongolddev/wordpace/internal/tui/components"
	"github.com/theirongolddev/wordpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalsTab(cw, contentH int) string {
	t := theme.Active
	if len(a.goals) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + empty.Render("  No goals yet. Press n to create one.")
	}

	now := time.Now()
	innerW := components.CardInnerWidth(cw)

	titleW := innerW / 3
	if titleW < 12 {
		titleW = 12
	}
	barW := innerW - titleW - 30
	if barW < 8 {
		barW = 8
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var body strings.Builder
	for i, g := range a.goals {
		stats := pace.ComputeStats(&g, a.entries[g.ID], now)

		marker := "  "
		if g.ID == a.cfg.General.ActiveGoal {
			marker = markStyle.Render("* ")
		}

		title := truncStr(g.Title, titleW-1)
		line := fmt.Sprintf("%-*s", titleW, title)
		if i == a.goalsCursor {
			line = selStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}

		body.WriteString(marker)
		body.WriteString(line)
		body.WriteString(" ")
		body.WriteString(components.GoalBar("", stats.ProgressPercentage/100, 0, barW))
		body.WriteString(dimStyle.Render(fmt.Sprintf("  %s", cli.FormatDaysRemaining(stats.DaysRemaining))))
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("    %s of %s · due %s",
			cli.FormatWords(stats.TotalWords),
			cli.FormatWords(g.TargetWordCount),
			cli.FormatDate(g.Deadline))))
		body.WriteString("\n")
	}

	hint := dimStyle.Render("Enter: set active · d: delete · n: new goal")
	content := strings.TrimRight(body.String(), "\n") + "\n\n" + hint

	return components.ContentCard(fmt.Sprintf("Goals (%d)", len(a.goals)), content, cw)
}
