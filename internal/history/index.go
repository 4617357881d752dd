// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const indexFile = "index.db"

// Run is one recorded invocation.
type Run struct {
	ID      int64     `json:"id"`
	Source  string    `json:"source"`
	Query   string    `json:"query"`
	Items   int       `json:"items"`
	File    string    `json:"file"`
	Created time.Time `json:"created"`
}

// Index is the SQLite catalogue of recorded runs.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates dir/index.db.
func OpenIndex(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, indexFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history index: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return idx, nil
}

// Close releases the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

func (x *Index) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			query TEXT NOT NULL,
			items INTEGER NOT NULL,
			file TEXT NOT NULL,
			created TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created)`,
	}
	for _, stmt := range statements {
		if _, err := x.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record adds a run and sets r.ID.
func (x *Index) Record(ctx context.Context, r *Run) error {
	res, err := x.db.ExecContext(ctx,
		`INSERT INTO runs (source, query, items, file, created) VALUES (?, ?, ?, ?, ?)`,
		r.Source, r.Query, r.Items, r.File, r.Created.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	r.ID = id
	return nil
}

// Recent returns up to n runs, newest first.
func (x *Index) Recent(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := x.db.QueryContext(ctx,
		`SELECT id, source, query, items, file, created FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Source, &r.Query, &r.Items, &r.File, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parsing run time %q: %w", created, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
