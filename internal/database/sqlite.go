package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deppfellow/cookbook/internal/config"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// sqlitePragmas are applied by the driver on every new connection.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

func newSQLite(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	db, err := openSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer at a time.
	db.SetMaxOpenConns(1)

	return &Database{
		DB:      db,
		Dialect: DialectSQLite,
		log:     logger,
	}, nil
}

// openSQLite opens (creating if absent) the database file at path.
func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?"+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}
