package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/wordpace/internal/model"
)

const oldSchemaSnapshot = `{
  "goals": [
    {
      "id": "goal-1",
      "title": "First novel",
      "targetWordCount": 80000,
      "deadline": "2026-03-01T00:00:00.000Z",
      "createdAt": "2025-10-01T09:30:00.000Z"
    }
  ],
  "entries": [
    {"id": "entry-1", "goalId": "goal-1", "date": "2025-10-02T00:00:00.000Z", "wordCount": 1500},
    {"id": "entry-2", "goalId": "gone", "date": "2025-10-03T00:00:00.000Z", "wordCount": 900}
  ]
}`

func TestDecodeSnapshotOldSchemaDefaults(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(oldSchemaSnapshot))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if len(snap.Goals) != 1 {
		t.Fatalf("len(Goals) = %d, want 1", len(snap.Goals))
	}
	g := snap.Goals[0]
	if g.InitialWordCount != 0 {
		t.Fatalf("InitialWordCount = %d, want 0 default", g.InitialWordCount)
	}
	if !g.StartDate.Equal(g.CreatedAt) {
		t.Fatalf("StartDate = %v, want createdAt fallback %v", g.StartDate, g.CreatedAt)
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(snap.Entries))
	}
}

func TestDecodeSnapshotBadDate(t *testing.T) {
	doc := `{"goals":[{"id":"g","title":"x","targetWordCount":1,"deadline":"soon","createdAt":"2025-10-01T00:00:00Z"}]}`
	if _, err := DecodeSnapshot(strings.NewReader(doc)); err == nil {
		t.Fatal("DecodeSnapshot accepted an unparseable deadline")
	}
}

func TestSnapshotEncodeDecodeRoundTrip(t *testing.T) {
	orig := Snapshot{
		Goals: []model.WritingGoal{{
			ID:               "g1",
			Title:            "Roundtrip",
			TargetWordCount:  30000,
			StartDate:        time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			Deadline:         time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			InitialWordCount: 2000,
			CreatedAt:        time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		}},
		Entries: []model.DailyEntry{{
			ID:        "e1",
			GoalID:    "g1",
			Date:      time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
			WordCount: 4200,
		}},
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, orig); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if len(got.Goals) != 1 || len(got.Entries) != 1 {
		t.Fatalf("round trip sizes = %d goals / %d entries, want 1/1", len(got.Goals), len(got.Entries))
	}
	if got.Goals[0].InitialWordCount != 2000 {
		t.Fatalf("InitialWordCount = %d, want 2000", got.Goals[0].InitialWordCount)
	}
	if !got.Goals[0].StartDate.Equal(orig.Goals[0].StartDate) {
		t.Fatalf("StartDate = %v, want %v", got.Goals[0].StartDate, orig.Goals[0].StartDate)
	}
	if got.Entries[0].WordCount != 4200 {
		t.Fatalf("entry WordCount = %d, want 4200", got.Entries[0].WordCount)
	}
}

func TestImportSnapshotSkipsOrphans(t *testing.T) {
	s := openTestStore(t)

	snap, err := DecodeSnapshot(strings.NewReader(oldSchemaSnapshot))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if err := s.ImportSnapshot(snap); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	goals, err := s.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("len(goals) = %d, want 1", len(goals))
	}
	if goals[0].ID != "goal-1" {
		t.Fatalf("imported goal id = %s, want goal-1 (ids preserved)", goals[0].ID)
	}

	entries, err := s.ListEntries("goal-1")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 (orphan skipped)", len(entries))
	}
}

func TestExportImportAcrossStores(t *testing.T) {
	src := openTestStore(t)

	goalID, err := src.CreateGoal(testGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := src.CreateEntry(model.DailyEntry{GoalID: goalID, Date: time.Now(), WordCount: 800}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	snap, err := src.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	dst, err := Open(filepath.Join(t.TempDir(), "copy.db"))
	if err != nil {
		t.Fatalf("Open dst: %v", err)
	}
	defer func() { _ = dst.Close() }()

	if err := dst.ImportSnapshot(snap); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	entries, err := dst.ListEntries(goalID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].WordCount != 800 {
		t.Fatalf("imported entries = %+v, want one with 800 words", entries)
	}
}
