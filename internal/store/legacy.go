package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/wordpace/internal/model"
)

// Snapshot is the portable on-disk interchange format: the goal and
// entry collections serialized independently as flat records with
// ISO-8601 date strings. It matches the layout older releases wrote,
// so decoding doubles as the schema-migration path.
type Snapshot struct {
	Goals   []model.WritingGoal
	Entries []model.DailyEntry
}

// goalRecord is the wire shape of a goal. StartDate and
// InitialWordCount were added after the first release and may be
// absent from old snapshots.
type goalRecord struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	TargetWordCount  int    `json:"targetWordCount"`
	StartDate        string `json:"startDate,omitempty"`
	Deadline         string `json:"deadline"`
	InitialWordCount *int   `json:"initialWordCount,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

type entryRecord struct {
	ID        string `json:"id"`
	GoalID    string `json:"goalId"`
	Date      string `json:"date"`
	WordCount int    `json:"wordCount"`
}

type snapshotDoc struct {
	Goals   []goalRecord  `json:"goals"`
	Entries []entryRecord `json:"entries"`
}

// EncodeSnapshot writes the snapshot as indented JSON.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	doc := snapshotDoc{
		Goals:   make([]goalRecord, 0, len(snap.Goals)),
		Entries: make([]entryRecord, 0, len(snap.Entries)),
	}
	for _, g := range snap.Goals {
		initial := g.InitialWordCount
		doc.Goals = append(doc.Goals, goalRecord{
			ID:               g.ID,
			Title:            g.Title,
			TargetWordCount:  g.TargetWordCount,
			StartDate:        g.StartDate.Format(time.RFC3339),
			Deadline:         g.Deadline.Format(time.RFC3339),
			InitialWordCount: &initial,
			CreatedAt:        g.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, e := range snap.Entries {
		doc.Entries = append(doc.Entries, entryRecord{
			ID:        e.ID,
			GoalID:    e.GoalID,
			Date:      e.Date.Format(time.RFC3339),
			WordCount: e.WordCount,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeSnapshot reads a snapshot, filling in the fields old schemas
// lack: a missing initial word count becomes 0 and a missing start
// date falls back to the goal's creation date.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var doc snapshotDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot: %w", err)
	}

	var snap Snapshot
	for _, rec := range doc.Goals {
		created, err := parseWireDate(rec.CreatedAt)
		if err != nil {
			return Snapshot{}, fmt.Errorf("goal %s: bad createdAt: %w", rec.ID, err)
		}
		deadline, err := parseWireDate(rec.Deadline)
		if err != nil {
			return Snapshot{}, fmt.Errorf("goal %s: bad deadline: %w", rec.ID, err)
		}

		g := model.WritingGoal{
			ID:              rec.ID,
			Title:           rec.Title,
			TargetWordCount: rec.TargetWordCount,
			Deadline:        deadline,
			CreatedAt:       created,
			StartDate:       created,
		}
		if rec.StartDate != "" {
			start, err := parseWireDate(rec.StartDate)
			if err != nil {
				return Snapshot{}, fmt.Errorf("goal %s: bad startDate: %w", rec.ID, err)
			}
			g.StartDate = start
		}
		if rec.InitialWordCount != nil {
			g.InitialWordCount = *rec.InitialWordCount
		}
		snap.Goals = append(snap.Goals, g)
	}

	for _, rec := range doc.Entries {
		date, err := parseWireDate(rec.Date)
		if err != nil {
			return Snapshot{}, fmt.Errorf("entry %s: bad date: %w", rec.ID, err)
		}
		snap.Entries = append(snap.Entries, model.DailyEntry{
			ID:        rec.ID,
			GoalID:    rec.GoalID,
			Date:      date,
			WordCount: rec.WordCount,
		})
	}

	return snap, nil
}

// ExportSnapshot reads every goal and entry into a snapshot.
func (s *Store) ExportSnapshot() (Snapshot, error) {
	goals, err := s.ListGoals()
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing goals: %w", err)
	}

	snap := Snapshot{Goals: goals}
	for _, g := range goals {
		entries, err := s.ListEntries(g.ID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("listing entries for %s: %w", g.ID, err)
		}
		snap.Entries = append(snap.Entries, entries...)
	}
	return snap, nil
}

// ImportSnapshot loads a snapshot into the store, preserving ids.
// Existing records with the same id are replaced. Entries pointing at
// goals absent from both the snapshot and the store are skipped so a
// partial snapshot cannot plant orphans.
func (s *Store) ImportSnapshot(snap Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	known := make(map[string]struct{}, len(snap.Goals))
	for _, g := range snap.Goals {
		known[g.ID] = struct{}{}
		_, err := tx.Exec(`INSERT OR REPLACE INTO goals
			(goal_id, title, target_word_count, start_date, deadline, initial_word_count, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.TargetWordCount,
			g.StartDate.Format(dateLayout),
			g.Deadline.Format(dateLayout),
			g.InitialWordCount,
			g.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("importing goal %s: %w", g.ID, err)
		}
	}

	skipped := 0
	for _, e := range snap.Entries {
		if _, ok := known[e.GoalID]; !ok {
			if exists, err := s.goalExistsTx(tx, e.GoalID); err != nil {
				return err
			} else if !exists {
				skipped++
				continue
			}
		}
		_, err := tx.Exec(`INSERT OR REPLACE INTO entries
			(entry_id, goal_id, entry_date, word_count) VALUES (?, ?, ?, ?)`,
			e.ID, e.GoalID, e.Date.Format(dateLayout), e.WordCount)
		if err != nil {
			return fmt.Errorf("importing entry %s: %w", e.ID, err)
		}
	}
	if skipped > 0 {
		log.Warn("skipped entries without a matching goal", "count", skipped)
	}

	return tx.Commit()
}

func (s *Store) goalExistsTx(tx *sql.Tx, id string) (bool, error) {
	var n int
	if err := tx.QueryRow("SELECT COUNT(*) FROM goals WHERE goal_id = ?", id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// parseWireDate accepts RFC 3339 timestamps (what the JS original
// serialized) and bare ISO dates.
func parseWireDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
