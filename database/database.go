package database

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

const driverName = "apibase_sqlite3"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			_, err := conn.Exec(`
				PRAGMA busy_timeout       = 5000;
				PRAGMA journal_mode       = WAL;
				PRAGMA journal_size_limit = 200000000;
				PRAGMA synchronous        = NORMAL;
				PRAGMA foreign_keys       = ON;
				PRAGMA temp_store         = MEMORY;
				PRAGMA cache_size         = -16000;
			`, nil)

			return err
		},
	})
}

func New(databasePath string) (*sql.DB, error) {
	db, err := sql.Open(driverName, databasePath)
	if err != nil {
		return nil, errors.Join(errors.New("opening database failed"), err)
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Join(errors.New("ping db failed"), err)
	}

	return db, nil
}
