package sqlite

import (
	"database/sql"
	"fmt"
)

// columnMigration is an additive schema change applied only when the column
// is absent. SQLite has no ADD COLUMN IF NOT EXISTS, so presence is checked
// through PRAGMA table_info first.
type columnMigration struct {
	table  string
	column string
	ddl    string
}

// migrations lists the columns added after the base schema shipped, in the
// order they were introduced.
var migrations = []columnMigration{
	{
		table:  "users",
		column: "company",
		ddl:    `ALTER TABLE users ADD COLUMN company TEXT NOT NULL DEFAULT ''`,
	},
	{
		table:  "invoices",
		column: "client_id",
		ddl:    `ALTER TABLE invoices ADD COLUMN client_id TEXT NOT NULL DEFAULT ''`,
	},
	{
		table:  "invoices",
		column: "currency",
		ddl:    `ALTER TABLE invoices ADD COLUMN currency TEXT NOT NULL DEFAULT 'USD'`,
	},
	{
		table:  "contact_submissions",
		column: "is_resolved",
		ddl:    `ALTER TABLE contact_submissions ADD COLUMN is_resolved INTEGER NOT NULL DEFAULT 0`,
	},
}

// Migrate applies the base schema and any pending additive column changes
// inside a single transaction. Either the database ends up fully migrated
// or untouched.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("apply base schema: %w", err)
	}

	for _, m := range migrations {
		exists, err := columnExists(tx, m.table, m.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(m.ddl); err != nil {
			return fmt.Errorf("add %s.%s: %w", m.table, m.column, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

func columnExists(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, fmt.Errorf("inspect %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
