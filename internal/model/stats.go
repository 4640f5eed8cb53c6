package model

import "time"

// WritingStats holds pacing statistics derived from one goal and its
// entries at a given point in time. It is recomputed on demand and
// never persisted.
//
// ProjectedCompletion is the zero time.Time when DaysToComplete is
// infinite (no progress yet); callers check IsZero and render a
// placeholder instead of a date.
type WritingStats struct {
	TotalWords     int
	RemainingWords int

	AverageDaily      float64 // words per day since the goal's start date
	DaysRemaining     int     // whole days to the deadline; negative when overdue
	WordsPerDayNeeded float64 // 0 once the deadline has passed

	DaysToComplete      float64 // +Inf when no progress has been made
	ProjectedCompletion time.Time

	ProgressPercentage float64 // unclamped; over 100 means overshoot
}

// DailyProgress is one row of the recent-activity view: a dated
// cumulative total and the non-negative delta against the previous
// snapshot.
type DailyProgress struct {
	Date       time.Time
	TotalWords int
	DailyWords int
}
