package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/cookbook/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// The binary carries its migrations; nothing is read from disk at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

//go:embed schema/sqlite.sql
var sqliteSchema string

// Migrate brings the configured database up to the latest schema.
//
// PostgreSQL is versioned with jackc/tern (schema_version table). SQLite
// applies an idempotent CREATE TABLE IF NOT EXISTS, which also accepts a
// database file created by an earlier deployment.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	if cfg.Database.IsSQLite() {
		return migrateSQLite(ctx, logger, cfg.Database.Path)
	}
	return migratePostgres(ctx, logger, cfg.Database)
}

func migrateSQLite(ctx context.Context, logger *zerolog.Logger, path string) error {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("applying sqlite schema: %w", err)
	}

	logger.Info().Str("path", path).Msg("database schema up to date")
	return nil
}

func migratePostgres(ctx context.Context, logger *zerolog.Logger, cfg config.DatabaseConfig) error {
	// A single connection is enough for a one-time action.
	conn, err := pgx.Connect(ctx, postgresDSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
