package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/wordpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{80, 4},
		{7, 2},
		{121, 5},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestProgressBarCapsAtFull(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := ProgressBar(1.2, 20)
	if !strings.Contains(bar, "120%") {
		t.Errorf("ProgressBar(1.2) should keep the true percentage, got %q", bar)
	}
	if strings.Contains(bar, "░") {
		t.Errorf("ProgressBar(1.2) should render a full bar, got %q", bar)
	}
}

func TestSparklineLengthMatchesInput(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{0, 500, 1200, 800, 2000}
	spark := Sparkline(values, theme.Active.Accent)

	count := 0
	for _, r := range spark {
		if r >= '▁' && r <= '█' {
			count++
		}
	}
	if count != len(values) {
		t.Errorf("Sparkline rendered %d blocks, want %d", count, len(values))
	}
}
