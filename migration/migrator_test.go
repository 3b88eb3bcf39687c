package migration_test

import (
	"context"
	"testing"

	"github.com/jvdberg/go-api-base/database"
	"github.com/jvdberg/go-api-base/migration"
	"github.com/jvdberg/go-api-base/migration/versions"
)

func TestUpIsIdempotent(t *testing.T) {
	t.Parallel()

	db := database.NewTestDatabase(t)

	// NewTestDatabase already ran the create tables migration once
	migrator := migration.NewMigrator(db)
	if err := migrator.Up(context.Background(), []migration.Migration{
		versions.NewMigrationCreateTables(database.TestAdminEmail, database.TestAdminPassword),
	}); err != nil {
		t.Fatalf("second migration up failed: %v", err)
	}

	var userCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tbl_user;`).Scan(&userCount); err != nil {
		t.Fatal(err)
	}
	if userCount != 1 {
		t.Errorf("expected exactly 1 seeded user, got %d", userCount)
	}

	var migrationCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tbl_migration;`).Scan(&migrationCount); err != nil {
		t.Fatal(err)
	}
	if migrationCount != 1 {
		t.Errorf("expected exactly 1 recorded migration, got %d", migrationCount)
	}
}

func TestUpWithoutMigrations(t *testing.T) {
	t.Parallel()

	db := database.NewTestDatabase(t)

	migrator := migration.NewMigrator(db)
	if err := migrator.Up(context.Background(), nil); err != nil {
		t.Fatalf("up without migrations failed: %v", err)
	}
}
