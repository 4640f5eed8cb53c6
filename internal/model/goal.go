// Package model defines domain types for wordpace goals and entries.
package model

import (
	"errors"
	"fmt"
	"time"
)

// WritingGoal is a tracked writing project with a word-count target
// and a deadline. The ID is assigned by the store at creation and
// never changes afterward.
type WritingGoal struct {
	ID               string
	Title            string
	TargetWordCount  int
	StartDate        time.Time // calendar date pacing is measured from
	Deadline         time.Time // calendar date the target should be hit by
	InitialWordCount int       // words already written at StartDate
	CreatedAt        time.Time
}

// Validate checks the goal shape at creation time. Derived statistics
// assume a valid goal and do not re-check these rules.
func (g WritingGoal) Validate(now time.Time) error {
	if g.Title == "" {
		return errors.New("goal title must not be empty")
	}
	if g.TargetWordCount <= 0 {
		return fmt.Errorf("target word count must be positive, got %d", g.TargetWordCount)
	}
	if g.InitialWordCount < 0 {
		return fmt.Errorf("initial word count must not be negative, got %d", g.InitialWordCount)
	}
	if g.StartDate.IsZero() {
		return errors.New("goal start date is required")
	}
	if g.Deadline.IsZero() {
		return errors.New("goal deadline is required")
	}
	if g.Deadline.Before(g.StartDate) {
		return fmt.Errorf("deadline %s is before start date %s",
			g.Deadline.Format("2006-01-02"), g.StartDate.Format("2006-01-02"))
	}
	// Compare calendar days so a goal created later in the day still counts as today.
	if startOfDay(g.StartDate).After(startOfDay(now)) {
		return fmt.Errorf("start date %s is in the future", g.StartDate.Format("2006-01-02"))
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
