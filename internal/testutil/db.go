// Package testutil holds shared test helpers.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/funcbase/cli/internal/store"
	"github.com/funcbase/cli/internal/store/migrations"
)

// OpenTestStore returns a migrated in-memory invocation store, closed
// automatically when the test ends.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(db))

	return store.NewWithDB(db)
}
