// Package pace computes pacing statistics for writing goals. Every
// function here is pure: inputs are passed explicitly (including the
// current time) and nothing is cached or mutated, so calls are safe
// to repeat and to run concurrently.
package pace

import (
	"iter"
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/wordpace/internal/model"
)

const day = 24 * time.Hour

// ComputeStats derives the full statistics record for a goal from its
// entries at the injected current time. Entries are expected to be
// pre-filtered to the goal; the caller owns that filter.
//
// A nil goal yields the zero record so callers can render without a
// null-check branch.
func ComputeStats(goal *model.WritingGoal, entries []model.DailyEntry, now time.Time) model.WritingStats {
	if goal == nil {
		return model.WritingStats{}
	}

	var stats model.WritingStats
	stats.TotalWords = latestWordCount(goal, entries)

	// Floor of 1 so the creation day doesn't divide by zero.
	daysSinceStart := ceilDays(now.Sub(goal.StartDate))
	if daysSinceStart < 1 {
		daysSinceStart = 1
	}
	stats.AverageDaily = float64(stats.TotalWords) / float64(daysSinceStart)

	stats.DaysRemaining = ceilDays(goal.Deadline.Sub(now))

	stats.RemainingWords = goal.TargetWordCount - stats.TotalWords
	if stats.RemainingWords < 0 {
		stats.RemainingWords = 0
	}

	// Once the deadline has passed the required pace stops being
	// meaningful; overdue state is carried by DaysRemaining instead.
	if stats.DaysRemaining > 0 {
		stats.WordsPerDayNeeded = float64(stats.RemainingWords) / float64(stats.DaysRemaining)
	}

	// TargetWordCount > 0 is a creation-time invariant.
	stats.ProgressPercentage = float64(stats.TotalWords) / float64(goal.TargetWordCount) * 100

	if stats.AverageDaily > 0 {
		stats.DaysToComplete = float64(stats.RemainingWords) / stats.AverageDaily
		stats.ProjectedCompletion = now.Add(time.Duration(stats.DaysToComplete * float64(day)))
	} else {
		stats.DaysToComplete = math.Inf(1)
		// ProjectedCompletion stays the zero-time sentinel.
	}

	return stats
}

// latestWordCount picks the cumulative total from the entry with the
// latest date, falling back to the goal's initial count when there are
// no entries. On a date tie the larger word count wins, so a same-day
// downward correction never masks the higher total.
func latestWordCount(goal *model.WritingGoal, entries []model.DailyEntry) int {
	if len(entries) == 0 {
		return goal.InitialWordCount
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(latest.Date) ||
			(e.Date.Equal(latest.Date) && e.WordCount > latest.WordCount) {
			latest = e
		}
	}
	return latest.WordCount
}

// DailyDeltas yields the goal's entries in ascending date order with
// the words added since the previous snapshot. The baseline for the
// first entry is the goal's initial word count; after that it is the
// previous entry in sorted order. Deltas are floored at zero so a
// downward correction shows no regress, while the cumulative total is
// reported as entered.
//
// The sequence is finite and restartable: ranging over it a second
// time replays the same rows.
func DailyDeltas(goal *model.WritingGoal, entries []model.DailyEntry) iter.Seq[model.DailyProgress] {
	baseline := 0
	if goal != nil {
		baseline = goal.InitialWordCount
	}
	sorted := sortEntries(entries)

	return func(yield func(model.DailyProgress) bool) {
		prev := baseline
		for _, e := range sorted {
			delta := e.WordCount - prev
			if delta < 0 {
				delta = 0
			}
			if !yield(model.DailyProgress{
				Date:       e.Date,
				TotalWords: e.WordCount,
				DailyWords: delta,
			}) {
				return
			}
			prev = e.WordCount
		}
	}
}

// RecentDeltas returns the n most recent rows of DailyDeltas, newest
// first, for the recent-activity view.
func RecentDeltas(goal *model.WritingGoal, entries []model.DailyEntry, n int) []model.DailyProgress {
	var all []model.DailyProgress
	for p := range DailyDeltas(goal, entries) {
		all = append(all, p)
	}
	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	// Reverse in place: newest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all
}

// sortEntries returns a copy ordered by (date, word count, id) so tied
// dates have a deterministic order independent of input order.
func sortEntries(entries []model.DailyEntry) []model.DailyEntry {
	sorted := make([]model.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.WordCount != b.WordCount {
			return a.WordCount < b.WordCount
		}
		return a.ID < b.ID
	})
	return sorted
}

// ceilDays converts a duration to whole days, rounding toward the
// next full day for positive fractions.
func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
