package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#4F46E5'
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		priority           TEXT NOT NULL DEFAULT 'medium',
		deadline           DATETIME,
		project_id         INTEGER NOT NULL DEFAULT 0,
		completed          BOOLEAN NOT NULL DEFAULT 0,
		created_at         DATETIME NOT NULL,
		completed_at       DATETIME,
		is_recurring       BOOLEAN NOT NULL DEFAULT 0,
		recurring_id       TEXT NOT NULL DEFAULT '',
		recurrence_pattern TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_recurring_id ON tasks (recurring_id)`,
	`CREATE TABLE IF NOT EXISTS subtasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		task_id     INTEGER NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
		completed   BOOLEAN NOT NULL DEFAULT 0,
		deadline    DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subtasks_task_id ON subtasks (task_id)`,
}

// Open opens the sqlite file at path, ":memory:" giving a private in-memory database.
// Times are written in sqlite's own format and foreign keys are enforced.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	if path == "" {
		path = ":memory:"
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// Migrate applies the schema, every statement being idempotent
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, statement := range migrations {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}
