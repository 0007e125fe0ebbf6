// Package dbtest opens the Postgres database the store tests run against.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

// Open connects to DATABASE_URL and applies the migrations. The test is
// skipped when the variable is unset. Tests share the schema, so each one
// should work under its own tenant id.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := database.New(url)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)

	return db
}
