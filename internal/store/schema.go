package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS goals (
    goal_id              TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    target_word_count    INTEGER NOT NULL,
    start_date           TEXT,
    deadline             TEXT NOT NULL,
    initial_word_count   INTEGER NOT NULL DEFAULT 0,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
    entry_id             TEXT PRIMARY KEY,
    goal_id              TEXT NOT NULL REFERENCES goals(goal_id) ON DELETE CASCADE,
    entry_date           TEXT NOT NULL,
    word_count           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_goal ON entries(goal_id);
CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date);
`
