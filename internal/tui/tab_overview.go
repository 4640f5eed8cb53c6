package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/tui/components"
	"github.com/theirongolddev/wordpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	goal := a.viewedGoal()
	if goal == nil {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + empty.Render("  No goals yet. Press n to create one.")
	}

	stats := a.stats
	var b strings.Builder

	// Row 1: Metric cards
	avgDetail := fmt.Sprintf("%.0f words/day", stats.AverageDaily)
	paceDetail := ""
	if stats.DaysRemaining > 0 {
		paceDetail = fmt.Sprintf("need %.0f/day", stats.WordsPerDayNeeded)
	} else {
		paceDetail = cli.FormatDaysRemaining(stats.DaysRemaining)
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Written", cli.FormatNumber(int64(stats.TotalWords)), "of " + cli.FormatWords(goal.TargetWordCount)},
		{"Remaining", cli.FormatNumber(int64(stats.RemainingWords)), paceDetail},
		{"Pace", cli.FormatWords(int(stats.AverageDaily)), avgDetail},
		{"Deadline", goal.Deadline.Format("Jan 2"), cli.FormatDaysRemaining(stats.DaysRemaining)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Progress toward the target
	barW := components.CardInnerWidth(cw) - 18
	if barW < 10 {
		barW = 10
	}
	progressBody := components.GoalBar("Progress", stats.ProgressPercentage/100, 10, barW)
	b.WriteString(components.ContentCard("", progressBody, cw))
	b.WriteString("\n")

	// Row 3: Daily output chart (oldest left)
	if len(a.history) > 0 {
		n := len(a.history)
		chartVals := make([]float64, n)
		chartLabels := make([]string, n)
		prevMonth := time.Month(0)
		for i := n - 1; i >= 0; i-- {
			p := a.history[i]
			pos := n - 1 - i
			chartVals[pos] = float64(p.DailyWords)
			if pos == 0 || p.Date.Month() != prevMonth {
				chartLabels[pos] = p.Date.Format("Jan")
			} else {
				chartLabels[pos] = strconv.Itoa(p.Date.Day())
			}
			prevMonth = p.Date.Month()
		}

		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			"Daily Output",
			components.BarChart(chartVals, chartLabels, t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 4: Projection + recent sparkline
	halves := components.LayoutRow(cw, 2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var projBody strings.Builder
	if stats.ProjectedCompletion.IsZero() {
		fmt.Fprintf(&projBody, "%s %s\n",
			labelStyle.Render("Finish by "),
			valueStyle.Render("— log some progress first"))
	} else {
		finish := valueStyle.Render(stats.ProjectedCompletion.Format("Jan 2, 2006"))
		if stats.ProjectedCompletion.After(goal.Deadline.AddDate(0, 0, 1)) {
			finish += warnStyle.Render("  behind schedule")
		}
		fmt.Fprintf(&projBody, "%s %s\n", labelStyle.Render("Finish by "), finish)
		fmt.Fprintf(&projBody, "%s %s\n",
			labelStyle.Render("At pace of"),
			valueStyle.Render(fmt.Sprintf("%.0f words/day", stats.AverageDaily)))
	}

	recent := a.history
	if len(recent) > a.cfg.General.RecentEntries {
		recent = recent[:a.cfg.General.RecentEntries]
	}
	spark := make([]float64, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		spark = append(spark, float64(recent[i].DailyWords))
	}
	var recentBody strings.Builder
	recentBody.WriteString(components.Sparkline(spark, t.Accent))
	recentBody.WriteString("\n")
	for _, p := range recent {
		fmt.Fprintf(&recentBody, "%s %s\n",
			labelStyle.Render(p.Date.Format("Jan 02")),
			valueStyle.Render(cli.FormatSignedWords(p.DailyWords)))
	}

	projCard := components.ContentCard("Projection", projBody.String(), halves[0])
	recentCard := components.ContentCard("Recent", recentBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Projection", projBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Recent", recentBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{projCard, recentCard}))
	}

	return b.String()
}
