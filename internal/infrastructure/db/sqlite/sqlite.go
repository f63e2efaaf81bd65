package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultTimeout = 5 * time.Second

// timeFormat is the canonical storage format for all timestamp columns.
const timeFormat = time.RFC3339Nano

// schema is the base relational layout. All statements are idempotent so
// opening an existing database is a no-op; additive column changes are
// applied offline by cmd/migrate.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	company       TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id            TEXT PRIMARY KEY,
	number        TEXT NOT NULL,
	admin_id      TEXT NOT NULL DEFAULT '',
	contractor_id TEXT NOT NULL REFERENCES users(id),
	client_id     TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	amount_cents  INTEGER NOT NULL,
	currency      TEXT NOT NULL DEFAULT 'USD',
	status        TEXT NOT NULL DEFAULT 'pending',
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invoices_contractor ON invoices(contractor_id);

CREATE TABLE IF NOT EXISTS services (
	id          TEXT PRIMARY KEY,
	admin_id    TEXT NOT NULL REFERENCES users(id),
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price_cents INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contractor_requests (
	id            TEXT PRIMARY KEY,
	contractor_id TEXT NOT NULL REFERENCES users(id),
	admin_id      TEXT NOT NULL REFERENCES users(id),
	status        TEXT NOT NULL DEFAULT 'pending',
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_requests_contractor ON contractor_requests(contractor_id, status);
CREATE INDEX IF NOT EXISTS idx_requests_admin ON contractor_requests(admin_id);

CREATE TABLE IF NOT EXISTS contact_submissions (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	is_resolved INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
`

// Open opens the SQLite database at path, verifies connectivity, and
// applies the base schema.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return db, nil
}

// parseTime converts a stored timestamp column back into time.Time.
// A zero time is returned for empty columns rather than an error; the
// column constraints make that unreachable in practice.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}
