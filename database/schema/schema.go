// Package schema creates the tables backing the entities when they are
// missing. It does not version or alter existing tables.
package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS blogs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	)`,
}

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS blogs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		body TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	)`,
}

// CreateTables picks the DDL matching the pool's driver and runs it.
func CreateTables(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case "postgres", "pgx":
		stmts = postgresTables
	case "sqlite3":
		stmts = sqliteTables
	default:
		return fmt.Errorf("unsupported driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	return nil
}
