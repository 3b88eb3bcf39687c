package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jvdberg/go-api-base/migration"
	"github.com/jvdberg/go-api-base/migration/versions"
	"github.com/jvdberg/go-api-base/random"
)

// Credentials of the user seeded into every test database.
const (
	TestAdminEmail    = "admin@example.com"
	TestAdminPassword = "admin-secret"
)

// NewTestDatabase provisions an isolated database file for a single test.
// Every call yields its own file, so parallel tests never observe each
// other's rows. The file lives in the test temp dir and is removed with it.
func NewTestDatabase(tb testing.TB) *sql.DB {
	tb.Helper()

	databasePath := filepath.Join(tb.TempDir(), fmt.Sprintf("%d_%s.db", time.Now().UnixNano(), random.NewString(4)))

	db, err := New(databasePath)
	if err != nil {
		tb.Fatalf("opening test database failed: %v", err)
	}

	migrator := migration.NewMigrator(db)
	if err := migrator.Up(context.Background(), []migration.Migration{
		versions.NewMigrationCreateTables(TestAdminEmail, TestAdminPassword),
	}); err != nil {
		tb.Fatalf("migrating test database failed: %v", err)
	}

	tb.Cleanup(func() {
		db.Close()
	})

	return db
}
