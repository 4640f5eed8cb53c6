package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/wordpace/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wordpace.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testGoal() model.WritingGoal {
	today := time.Now()
	return model.WritingGoal{
		Title:           "Novel draft",
		TargetWordCount: 50000,
		StartDate:       today,
		Deadline:        today.AddDate(0, 0, 50),
	}
}

func TestCreateAndGetGoal(t *testing.T) {
	s := openTestStore(t)

	id, err := s.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if id == "" {
		t.Fatal("CreateGoal returned empty id")
	}

	g, err := s.GetGoal(id)
	if err != nil {
		t.Fatalf("GetGoal: %v", err)
	}
	if g == nil {
		t.Fatal("GetGoal returned nil for a stored goal")
	}
	if g.Title != "Novel draft" {
		t.Fatalf("Title = %q, want %q", g.Title, "Novel draft")
	}
	if g.TargetWordCount != 50000 {
		t.Fatalf("TargetWordCount = %d, want 50000", g.TargetWordCount)
	}
	if g.CreatedAt.IsZero() {
		t.Fatal("CreatedAt was not stamped")
	}
}

func TestGetGoalMissing(t *testing.T) {
	s := openTestStore(t)

	g, err := s.GetGoal("nope")
	if err != nil {
		t.Fatalf("GetGoal: %v", err)
	}
	if g != nil {
		t.Fatalf("GetGoal = %+v, want nil for unknown id", g)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	s := openTestStore(t)
	today := time.Now()

	cases := []struct {
		name string
		goal model.WritingGoal
	}{
		{"empty title", model.WritingGoal{
			TargetWordCount: 1000, StartDate: today, Deadline: today.AddDate(0, 0, 1),
		}},
		{"zero target", model.WritingGoal{
			Title: "x", StartDate: today, Deadline: today.AddDate(0, 0, 1),
		}},
		{"negative initial", model.WritingGoal{
			Title: "x", TargetWordCount: 1000, InitialWordCount: -1,
			StartDate: today, Deadline: today.AddDate(0, 0, 1),
		}},
		{"deadline before start", model.WritingGoal{
			Title: "x", TargetWordCount: 1000,
			StartDate: today, Deadline: today.AddDate(0, 0, -2),
		}},
		{"future start", model.WritingGoal{
			Title: "x", TargetWordCount: 1000,
			StartDate: today.AddDate(0, 0, 3), Deadline: today.AddDate(0, 0, 10),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateGoal(tc.goal); err == nil {
				t.Fatalf("CreateGoal accepted invalid goal %+v", tc.goal)
			}
		})
	}

	count, err := s.CountGoals()
	if err != nil {
		t.Fatalf("CountGoals: %v", err)
	}
	if count != 0 {
		t.Fatalf("CountGoals = %d after rejected creates, want 0", count)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	goalID, err := s.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	date := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	entryID, err := s.CreateEntry(model.DailyEntry{GoalID: goalID, Date: date, WordCount: 1200})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	entries, err := s.ListEntries(goalID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].ID != entryID {
		t.Fatalf("entry id = %s, want %s", entries[0].ID, entryID)
	}
	if !entries[0].Date.Equal(date) {
		t.Fatalf("entry date = %v, want %v", entries[0].Date, date)
	}
	if entries[0].WordCount != 1200 {
		t.Fatalf("word count = %d, want 1200", entries[0].WordCount)
	}

	if err := s.DeleteEntry(entryID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	entries, err = s.ListEntries(goalID)
	if err != nil {
		t.Fatalf("ListEntries after delete: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len(entries) = %d after delete, want 0", len(entries))
	}
}

func TestCreateEntryRejectsNegativeCount(t *testing.T) {
	s := openTestStore(t)
	goalID, err := s.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	if _, err := s.CreateEntry(model.DailyEntry{GoalID: goalID, Date: time.Now(), WordCount: -5}); err == nil {
		t.Fatal("CreateEntry accepted a negative word count")
	}
}

func TestCreateEntryUnknownGoal(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.CreateEntry(model.DailyEntry{GoalID: "ghost", Date: time.Now(), WordCount: 10}); err == nil {
		t.Fatal("CreateEntry accepted an entry for a nonexistent goal")
	}
}

func TestDeleteGoalCascades(t *testing.T) {
	s := openTestStore(t)

	goalID, err := s.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	for i := range 3 {
		_, err := s.CreateEntry(model.DailyEntry{
			GoalID:    goalID,
			Date:      time.Now().AddDate(0, 0, -i),
			WordCount: i * 100,
		})
		if err != nil {
			t.Fatalf("CreateEntry %d: %v", i, err)
		}
	}

	if err := s.DeleteGoal(goalID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}

	entries, err := s.ListEntries(goalID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len(entries) = %d after cascade delete, want 0", len(entries))
	}

	if err := s.DeleteGoal(goalID); err == nil {
		t.Fatal("DeleteGoal succeeded twice for the same id")
	}
}

func TestMultipleEntriesSameDate(t *testing.T) {
	s := openTestStore(t)
	goalID, err := s.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	date := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	for _, wc := range []int{3000, 5000} {
		if _, err := s.CreateEntry(model.DailyEntry{GoalID: goalID, Date: date, WordCount: wc}); err != nil {
			t.Fatalf("CreateEntry(%d): %v", wc, err)
		}
	}

	entries, err := s.ListEntries(goalID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (same-date entries are kept)", len(entries))
	}
}
