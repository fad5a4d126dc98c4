// Package testutil provides an in-memory SQLite database with the service
// tables for tests.
package testutil

import (
	"BlogGolang/database/schema"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// NewDB opens a private in-memory database named after the test. A single
// connection keeps every statement on the same memory database.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	require.NoError(t, schema.CreateTables(context.Background(), db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
