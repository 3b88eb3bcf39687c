package versions

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvdberg/go-api-base/migration"
)

func NewMigrationCreateTables(adminEmail, adminPassword string) migration.Migration {
	return &migrationCreateTables{
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}
}

type migrationCreateTables struct {
	AdminEmail    string
	AdminPassword string
}

func (*migrationCreateTables) Identifier() string {
	return "20250301000000_create_tables"
}

func (m *migrationCreateTables) Up() []migration.Statement {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(m.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC().Unix()

	return []migration.Statement{
		{
			Query: `
				CREATE TABLE tbl_user (
					id TEXT NOT NULL,
					name TEXT NOT NULL,
					email TEXT NOT NULL,
					password_hash BLOB NOT NULL,
					created_at INT NOT NULL,
					updated_at INT NOT NULL,
					PRIMARY KEY (id),
					UNIQUE (email)
				);
			`,
		},
		{
			Query: `
				CREATE TABLE tbl_session (
					id TEXT NOT NULL,
					user_id TEXT NOT NULL,
					expires_at INT NOT NULL,
					created_at INT NOT NULL,
					PRIMARY KEY (id),
					FOREIGN KEY (user_id) REFERENCES tbl_user (id) ON DELETE CASCADE
				);
			`,
		},
		{
			Query: `CREATE INDEX idx_session_user_id ON tbl_session (user_id);`,
		},
		{
			Query: `INSERT INTO tbl_user (id, name, email, password_hash, created_at, updated_at) VALUES (?,?,?,?,?,?);`,
			Arguments: []any{
				uuid.New(), "Administrator", m.AdminEmail, passwordHash, now, now,
			},
		},
	}
}

func (m *migrationCreateTables) Down() []migration.Statement {
	return []migration.Statement{
		{Query: `DROP TABLE tbl_session;`},
		{Query: `DROP TABLE tbl_user;`},
	}
}
