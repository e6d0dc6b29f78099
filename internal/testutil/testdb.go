package testutil

import (
	"database/sql"
	"testing"

	"github.com/evanharte/pinboard/internal/db"
)

// NewTestDB opens an in-memory board database with the full schema
// migrated, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test board database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
