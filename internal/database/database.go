// Package database opens the storage engine the recipe repository runs on.
//
// Two engines are supported:
//   - SQLite (modernc.org/sqlite), a single file created on first start.
//   - PostgreSQL through a pgx connection pool with query tracing
//     (pgx tracelog + zerolog locally, New Relic nrpgx5 when enabled).
//
// Either way the rest of the application sees one *sql.DB and a Dialect.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/cookbook/internal/config"
	loggerConfig "github.com/deppfellow/cookbook/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Database wraps the shared *sql.DB handle, its dialect and a logger.
//
// Pool is only set for PostgreSQL; DB is backed by it in that case.
type Database struct {
	DB      *sql.DB
	Pool    *pgxpool.Pool
	Dialect Dialect
	log     *zerolog.Logger
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database "unreachable".
const DatabasePingTimeout = 10

// New opens the configured engine and pings it so startup fails fast when
// the database is unreachable.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var (
		database *Database
		err      error
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		database, err = newSQLite(cfg, logger)
	case config.DriverPostgres:
		database, err = newPostgres(cfg, logger, loggerService)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", cfg.Database.Driver).Msg("connected to the database")

	return database, nil
}

// Ping verifies the database is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the *sql.DB handle and, for PostgreSQL, the pool behind it.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")

	err := db.DB.Close()
	if db.Pool != nil {
		db.Pool.Close()
	}
	return err
}
