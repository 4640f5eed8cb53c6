package pace

import (
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/theirongolddev/wordpace/internal/model"
)

var day0 = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

func novelGoal() *model.WritingGoal {
	return &model.WritingGoal{
		ID:              "g1",
		Title:           "Novel",
		TargetWordCount: 50000,
		StartDate:       day0,
		Deadline:        day0.AddDate(0, 0, 50),
		CreatedAt:       day0,
	}
}

func TestComputeStatsFirstDayPace(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 1000},
	}
	now := day0.AddDate(0, 0, 1)

	stats := ComputeStats(goal, entries, now)

	if stats.TotalWords != 1000 {
		t.Fatalf("TotalWords = %d, want 1000", stats.TotalWords)
	}
	if stats.AverageDaily != 1000 {
		t.Fatalf("AverageDaily = %.2f, want 1000", stats.AverageDaily)
	}
	if stats.DaysRemaining != 49 {
		t.Fatalf("DaysRemaining = %d, want 49", stats.DaysRemaining)
	}
	wantNeeded := float64(50000-1000) / 49
	if math.Abs(stats.WordsPerDayNeeded-wantNeeded) > 1e-9 {
		t.Fatalf("WordsPerDayNeeded = %.4f, want %.4f", stats.WordsPerDayNeeded, wantNeeded)
	}
	if stats.ProgressPercentage != 2.0 {
		t.Fatalf("ProgressPercentage = %.4f, want 2.0", stats.ProgressPercentage)
	}
	if stats.ProjectedCompletion.IsZero() {
		t.Fatal("ProjectedCompletion is the sentinel despite progress being made")
	}
}

func TestComputeStatsNoEntries(t *testing.T) {
	goal := novelGoal()

	stats := ComputeStats(goal, nil, day0)

	if stats.TotalWords != 0 {
		t.Fatalf("TotalWords = %d, want 0", stats.TotalWords)
	}
	if stats.ProgressPercentage != 0 {
		t.Fatalf("ProgressPercentage = %.2f, want 0", stats.ProgressPercentage)
	}
	if !math.IsInf(stats.DaysToComplete, 1) {
		t.Fatalf("DaysToComplete = %.2f, want +Inf", stats.DaysToComplete)
	}
	if !stats.ProjectedCompletion.IsZero() {
		t.Fatalf("ProjectedCompletion = %v, want zero-time sentinel", stats.ProjectedCompletion)
	}
}

func TestComputeStatsInitialCountFallback(t *testing.T) {
	goal := novelGoal()
	goal.InitialWordCount = 12500

	stats := ComputeStats(goal, nil, day0)

	if stats.TotalWords != 12500 {
		t.Fatalf("TotalWords = %d, want 12500", stats.TotalWords)
	}
	if stats.ProgressPercentage != 25.0 {
		t.Fatalf("ProgressPercentage = %.2f, want 25.0", stats.ProgressPercentage)
	}
}

func TestComputeStatsSameDateTieBreak(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 5000},
		{ID: "e2", GoalID: "g1", Date: day0, WordCount: 3000},
	}

	// The larger count wins regardless of input order.
	for range 2 {
		stats := ComputeStats(goal, entries, day0.AddDate(0, 0, 1))
		if stats.TotalWords != 5000 {
			t.Fatalf("TotalWords = %d, want 5000 (max on tied date)", stats.TotalWords)
		}
		entries[0], entries[1] = entries[1], entries[0]
	}
}

func TestComputeStatsOverdue(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 100},
	}
	now := goal.Deadline.AddDate(0, 0, 5)

	stats := ComputeStats(goal, entries, now)

	if stats.DaysRemaining != -5 {
		t.Fatalf("DaysRemaining = %d, want -5", stats.DaysRemaining)
	}
	if stats.WordsPerDayNeeded != 0 {
		t.Fatalf("WordsPerDayNeeded = %.2f, want 0 past the deadline", stats.WordsPerDayNeeded)
	}
}

func TestComputeStatsDeadlineToday(t *testing.T) {
	goal := novelGoal()
	stats := ComputeStats(goal, nil, goal.Deadline)

	if stats.DaysRemaining != 0 {
		t.Fatalf("DaysRemaining = %d, want 0", stats.DaysRemaining)
	}
	if stats.WordsPerDayNeeded != 0 {
		t.Fatalf("WordsPerDayNeeded = %.2f, want 0 on deadline day", stats.WordsPerDayNeeded)
	}
}

func TestComputeStatsDaysRemainingDecrements(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 1000},
	}

	prev := ComputeStats(goal, entries, day0).DaysRemaining
	for i := 1; i <= 10; i++ {
		got := ComputeStats(goal, entries, day0.AddDate(0, 0, i)).DaysRemaining
		if got != prev-1 {
			t.Fatalf("day %d: DaysRemaining = %d, want %d", i, got, prev-1)
		}
		prev = got
	}
}

func TestComputeStatsOvershootUnclamped(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0.AddDate(0, 0, 10), WordCount: 60000},
	}

	stats := ComputeStats(goal, entries, day0.AddDate(0, 0, 11))

	if stats.ProgressPercentage != 120.0 {
		t.Fatalf("ProgressPercentage = %.2f, want 120.0 (no clamp)", stats.ProgressPercentage)
	}
	if stats.RemainingWords != 0 {
		t.Fatalf("RemainingWords = %d, want 0", stats.RemainingWords)
	}
	if stats.DaysToComplete != 0 {
		t.Fatalf("DaysToComplete = %.2f, want 0 when target is already hit", stats.DaysToComplete)
	}
}

func TestComputeStatsNilGoal(t *testing.T) {
	stats := ComputeStats(nil, []model.DailyEntry{{ID: "e1", Date: day0, WordCount: 500}}, day0)

	if !reflect.DeepEqual(stats, model.WritingStats{}) {
		t.Fatalf("nil goal stats = %+v, want zero record", stats)
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 900},
		{ID: "e2", GoalID: "g1", Date: day0.AddDate(0, 0, 1), WordCount: 2100},
	}
	now := day0.AddDate(0, 0, 3)

	first := ComputeStats(goal, entries, now)
	second := ComputeStats(goal, entries, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ:\n  first  %+v\n  second %+v", first, second)
	}
}

func TestDailyDeltasBaselineAndOrder(t *testing.T) {
	goal := novelGoal()
	goal.InitialWordCount = 500
	// Deliberately out of order.
	entries := []model.DailyEntry{
		{ID: "e3", GoalID: "g1", Date: day0.AddDate(0, 0, 2), WordCount: 3000},
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 1500},
		{ID: "e2", GoalID: "g1", Date: day0.AddDate(0, 0, 1), WordCount: 2000},
	}

	var got []model.DailyProgress
	for p := range DailyDeltas(goal, entries) {
		got = append(got, p)
	}

	want := []model.DailyProgress{
		{Date: day0, TotalWords: 1500, DailyWords: 1000},
		{Date: day0.AddDate(0, 0, 1), TotalWords: 2000, DailyWords: 500},
		{Date: day0.AddDate(0, 0, 2), TotalWords: 3000, DailyWords: 1000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("deltas = %+v, want %+v", got, want)
	}
}

func TestDailyDeltasNeverNegative(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 2000},
		{ID: "e2", GoalID: "g1", Date: day0.AddDate(0, 0, 1), WordCount: 1200}, // downward correction
		{ID: "e3", GoalID: "g1", Date: day0.AddDate(0, 0, 2), WordCount: 1600},
	}

	for p := range DailyDeltas(goal, entries) {
		if p.DailyWords < 0 {
			t.Fatalf("DailyWords = %d on %s, want >= 0", p.DailyWords, p.Date.Format("2006-01-02"))
		}
	}

	// The unclamped cumulative total still shows the correction.
	rows := RecentDeltas(goal, entries, 0)
	if rows[1].TotalWords != 1200 {
		t.Fatalf("corrected TotalWords = %d, want 1200", rows[1].TotalWords)
	}
	if rows[1].DailyWords != 400 {
		t.Fatalf("post-correction DailyWords = %d, want 400", rows[1].DailyWords)
	}
}

func TestDailyDeltasRestartable(t *testing.T) {
	goal := novelGoal()
	entries := []model.DailyEntry{
		{ID: "e1", GoalID: "g1", Date: day0, WordCount: 100},
		{ID: "e2", GoalID: "g1", Date: day0.AddDate(0, 0, 1), WordCount: 300},
	}

	seq := DailyDeltas(goal, entries)

	count := 0
	for range seq {
		count++
		break // early exit must not poison later passes
	}
	for range seq {
		count++
	}
	if count != 3 {
		t.Fatalf("consumed %d rows across two passes, want 3", count)
	}
}

func TestRecentDeltasNewestFirst(t *testing.T) {
	goal := novelGoal()
	var entries []model.DailyEntry
	for i := range 8 {
		entries = append(entries, model.DailyEntry{
			ID:        string(rune('a' + i)),
			GoalID:    "g1",
			Date:      day0.AddDate(0, 0, i),
			WordCount: (i + 1) * 1000,
		})
	}

	recent := RecentDeltas(goal, entries, 5)

	if len(recent) != 5 {
		t.Fatalf("len = %d, want 5", len(recent))
	}
	if !recent[0].Date.Equal(day0.AddDate(0, 0, 7)) {
		t.Fatalf("first row date = %s, want most recent", recent[0].Date.Format("2006-01-02"))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date.After(recent[i-1].Date) {
			t.Fatalf("rows not in newest-first order at index %d", i)
		}
	}
}

func BenchmarkComputeStats(b *testing.B) {
	goal := novelGoal()
	goal.Deadline = day0.AddDate(1, 0, 0)
	entries := make([]model.DailyEntry, 365)
	for i := range entries {
		entries[i] = model.DailyEntry{
			ID:        strconv.Itoa(i),
			GoalID:    "g1",
			Date:      day0.AddDate(0, 0, i),
			WordCount: i * 500,
		}
	}
	now := day0.AddDate(0, 6, 0)

	b.ResetTimer()
	for b.Loop() {
		ComputeStats(goal, entries, now)
	}
}
