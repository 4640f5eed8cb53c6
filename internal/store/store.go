// Package store provides the SQLite-backed repository for goals and
// entries. It owns id assignment, creation-time validation, and the
// cascade delete of a goal's entries; the statistics engine never
// touches it directly.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/theirongolddev/wordpace/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	dateLayout = "2006-01-02"
)

// Store is a SQLite-backed goal and entry repository.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.Debug("opened store", "path", dbPath)
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateGoal validates the goal, assigns its id and creation time, and
// persists it. The caller's ID and CreatedAt fields are ignored.
func (s *Store) CreateGoal(g model.WritingGoal) (string, error) {
	now := time.Now()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	if g.StartDate.IsZero() {
		g.StartDate = now
	}

	if err := g.Validate(now); err != nil {
		return "", err
	}

	_, err := s.db.Exec(`INSERT INTO goals
		(goal_id, title, target_word_count, start_date, deadline, initial_word_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.TargetWordCount,
		g.StartDate.Format(dateLayout),
		g.Deadline.Format(dateLayout),
		g.InitialWordCount,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting goal: %w", err)
	}

	log.Debug("created goal", "id", g.ID, "title", g.Title)
	return g.ID, nil
}

// ListGoals returns all goals, oldest first.
func (s *Store) ListGoals() ([]model.WritingGoal, error) {
	rows, err := s.db.Query(`SELECT
		goal_id, title, target_word_count, start_date, deadline, initial_word_count, created_at
		FROM goals ORDER BY created_at, goal_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.WritingGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal returns the goal with the given id, or nil if it does not exist.
func (s *Store) GetGoal(id string) (*model.WritingGoal, error) {
	rows, err := s.db.Query(`SELECT
		goal_id, title, target_word_count, start_date, deadline, initial_word_count, created_at
		FROM goals WHERE goal_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	g, err := scanGoal(rows)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGoal removes a goal; its entries go with it via the schema's
// cascade rule.
func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE goal_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no goal with id %s", id)
	}
	log.Debug("deleted goal", "id", id)
	return nil
}

// CountGoals returns the number of stored goals.
func (s *Store) CountGoals() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM goals").Scan(&count)
	return count, err
}

// CreateEntry validates the entry, assigns its id, and persists it.
// The referenced goal must exist.
func (s *Store) CreateEntry(e model.DailyEntry) (string, error) {
	e.ID = uuid.NewString()
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	if err := e.Validate(); err != nil {
		return "", err
	}

	_, err := s.db.Exec(`INSERT INTO entries (entry_id, goal_id, entry_date, word_count)
		VALUES (?, ?, ?, ?)`,
		e.ID, e.GoalID, e.Date.Format(dateLayout), e.WordCount)
	if err != nil {
		return "", fmt.Errorf("inserting entry: %w", err)
	}

	log.Debug("created entry", "id", e.ID, "goal", e.GoalID, "words", e.WordCount)
	return e.ID, nil
}

// ListEntries returns the entries for one goal. No ordering is
// promised; the statistics engine sorts as it needs to.
func (s *Store) ListEntries(goalID string) ([]model.DailyEntry, error) {
	rows, err := s.db.Query(`SELECT entry_id, goal_id, entry_date, word_count
		FROM entries WHERE goal_id = ?`, goalID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.DailyEntry
	for rows.Next() {
		var e model.DailyEntry
		var dateStr string
		if err := rows.Scan(&e.ID, &e.GoalID, &dateStr, &e.WordCount); err != nil {
			return nil, err
		}
		e.Date = parseStoredDate(dateStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes a single entry.
func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE entry_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no entry with id %s", id)
	}
	return nil
}

// scanGoal reads one goal row, applying the legacy-schema defaults: a
// NULL start date falls back to the creation date, a NULL initial
// count to zero.
func scanGoal(rows *sql.Rows) (model.WritingGoal, error) {
	var g model.WritingGoal
	var startStr sql.NullString
	var initial sql.NullInt64
	var deadlineStr, createdStr string

	err := rows.Scan(&g.ID, &g.Title, &g.TargetWordCount, &startStr, &deadlineStr, &initial, &createdStr)
	if err != nil {
		return g, err
	}

	g.Deadline = parseStoredDate(deadlineStr)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	if startStr.Valid && startStr.String != "" {
		g.StartDate = parseStoredDate(startStr.String)
	} else {
		g.StartDate = g.CreatedAt
	}
	if initial.Valid {
		g.InitialWordCount = int(initial.Int64)
	}
	return g, nil
}

// parseStoredDate accepts both the date-only layout used for new rows
// and full RFC 3339 timestamps carried over by an import.
func parseStoredDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
