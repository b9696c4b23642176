package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exercise_progress (
			position INTEGER PRIMARY KEY,
			done INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS verify_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			start_ts TEXT NOT NULL,
			finish_ts TEXT NOT NULL,
			all_done INTEGER NOT NULL DEFAULT 0,
			failed_exercise TEXT NOT NULL DEFAULT '',
			done_count INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Load reads the completion state for a catalog of the given size. A
// missing, partial, or unreadable store yields a fresh default state
// instead of an error; progress persisted for a different catalog size is
// discarded.
func (s *SQLiteStore) Load(ctx context.Context, total int) (CompletionState, error) {
	cs := Default(total)

	rows, err := s.db.QueryContext(ctx, `SELECT position, done FROM exercise_progress ORDER BY position`)
	if err != nil {
		return Default(total), nil
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var position, done int
		if err := rows.Scan(&position, &done); err != nil {
			return Default(total), nil
		}
		if position < 0 || position >= total {
			return Default(total), nil
		}
		cs.Progress[position] = done == 1
		count++
	}
	if err := rows.Err(); err != nil || (count != 0 && count != total) {
		return Default(total), nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = 'next_exercise_index'`)
	var raw string
	if err := row.Scan(&raw); err == nil {
		var next int
		if _, err := fmt.Sscanf(raw, "%d", &next); err == nil && next >= 0 && next <= total {
			cs.NextIndex = next
		}
	}
	return cs, nil
}

func (s *SQLiteStore) Save(ctx context.Context, cs CompletionState) (err error) {
	if !cs.valid() {
		return fmt.Errorf("save state: next index %d out of range [0,%d]", cs.NextIndex, len(cs.Progress))
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM exercise_progress`); err != nil {
		return err
	}
	for position, done := range cs.Progress {
		doneInt := 0
		if done {
			doneInt = 1
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO exercise_progress(position, done) VALUES(?, ?)`, position, doneInt); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO app_settings(key, value) VALUES('next_exercise_index', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, fmt.Sprintf("%d", cs.NextIndex)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) RecordVerifyRun(ctx context.Context, run VerifyRun) error {
	allDone := 0
	if run.AllDone {
		allDone = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verify_runs(session_id, start_ts, finish_ts, all_done, failed_exercise, done_count, total)
		VALUES(?,?,?,?,?,?,?)
	`,
		run.SessionID,
		run.StartTS.UTC().Format(timeLayout),
		run.FinishTS.UTC().Format(timeLayout),
		allDone,
		run.FailedExercise,
		run.DoneCount,
		run.Total,
	)
	return err
}

func (s *SQLiteStore) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(all_done),0) FROM verify_runs
	`)
	if err := row.Scan(&out.VerifyRuns, &out.Passes); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
