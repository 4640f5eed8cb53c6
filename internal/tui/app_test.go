package tui

import (
	"testing"
	"time"

	"github.com/theirongolddev/wordpace/internal/config"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/tui/components"
)

func testApp() App {
	goals := []model.WritingGoal{
		{ID: "g1", Title: "Novel", TargetWordCount: 50000,
			StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			Deadline:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "g2", Title: "Essay", TargetWordCount: 5000,
			StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			Deadline:  time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)},
	}
	a := App{
		goals:   goals,
		entries: map[string][]model.DailyEntry{},
		cfg:     config.Config{General: config.GeneralConfig{ActiveGoal: "g2", RecentEntries: 5}},
		loaded:  true,
	}
	a.recompute()
	return a
}

func TestRecomputePicksActiveGoal(t *testing.T) {
	a := testApp()
	if a.active != 1 {
		t.Fatalf("active = %d, want 1", a.active)
	}
	if g := a.viewedGoal(); g == nil || g.ID != "g2" {
		t.Fatalf("viewedGoal = %v, want g2", g)
	}
}

func TestRecomputeFallsBackToFirstGoal(t *testing.T) {
	a := testApp()
	a.cfg.General.ActiveGoal = "missing"
	a.recompute()
	if a.active != 0 {
		t.Fatalf("active = %d, want 0", a.active)
	}
}

func TestScrollByClampsGoalsCursor(t *testing.T) {
	a := testApp()
	a.activeTab = 2

	a = a.scrollBy(-1)
	if a.goalsCursor != 0 {
		t.Errorf("cursor after scroll up at top = %d, want 0", a.goalsCursor)
	}

	for i := 0; i < 10; i++ {
		a = a.scrollBy(1)
	}
	if a.goalsCursor != len(a.goals)-1 {
		t.Errorf("cursor after scrolling past end = %d, want %d", a.goalsCursor, len(a.goals)-1)
	}
}

func TestTabAtXMatchesRenderedBar(t *testing.T) {
	a := testApp()
	a.activeTab = 0

	// The first tab starts after the leading space.
	if got := a.tabAtX(1); got != 0 {
		t.Errorf("tabAtX(1) = %d, want 0", got)
	}
	if got := a.tabAtX(0); got != -1 && got != 0 {
		t.Errorf("tabAtX(0) = %d, want -1 or 0", got)
	}

	// Click far past the bar lands on nothing.
	if got := a.tabAtX(500); got != -1 {
		t.Errorf("tabAtX(500) = %d, want -1", got)
	}

	// Every tab must be reachable at its computed position.
	pos := 1
	for i, tab := range components.Tabs {
		if got := a.tabAtX(pos); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d", pos, got, i)
		}
		pos += components.TabVisualWidth(tab, i == a.activeTab) + 2
	}
}
