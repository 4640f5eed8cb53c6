package model

import (
	"fmt"
	"time"
)

// DailyEntry is one snapshot of the cumulative word count for a goal.
// WordCount is the total written so far, not a daily increment.
// Multiple entries may share a date; corrections are logged as new
// entries rather than edits.
type DailyEntry struct {
	ID        string
	GoalID    string
	Date      time.Time
	WordCount int
}

// Validate checks the entry shape at creation time.
func (e DailyEntry) Validate() error {
	if e.GoalID == "" {
		return fmt.Errorf("entry must reference a goal")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date is required")
	}
	if e.WordCount < 0 {
		return fmt.Errorf("word count must not be negative, got %d", e.WordCount)
	}
	return nil
}
