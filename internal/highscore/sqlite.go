package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS high_score (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	score      INTEGER NOT NULL,
	name       TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const upsertSQL = `
INSERT INTO high_score (id, score, name, updated_at)
VALUES (1, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
	score = excluded.score,
	name = excluded.name,
	updated_at = CURRENT_TIMESTAMP
WHERE excluded.score >= high_score.score;
`

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string, logger *log.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = log.Default()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open high score db %q: %w", path, err)
	}
	// Sessions share one connection so writers never see SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create high score table: %w", err)
	}
	logger.Info("high score store ready", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Read implements Store.
func (s *SQLiteStore) Read(ctx context.Context) (Record, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx, `SELECT score, name FROM high_score WHERE id = 1`).Scan(&rec.Score, &rec.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("read high score: %w", err)
	}
	return rec, nil
}

// Write implements Store.
func (s *SQLiteStore) Write(ctx context.Context, rec Record) error {
	if _, err := s.db.ExecContext(ctx, upsertSQL, rec.Score, rec.Name); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	s.logger.Debug("high score written", "score", rec.Score, "name", rec.Name)
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
