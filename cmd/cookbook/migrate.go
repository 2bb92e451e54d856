package main

import (
	"context"
	"time"

	"github.com/deppfellow/cookbook/internal/config"
	"github.com/deppfellow/cookbook/internal/database"
	"github.com/deppfellow/cookbook/internal/logger"
	"github.com/spf13/cobra"
)

// migrationTimeout bounds schema changes at startup and in `cookbook migrate`.
const migrationTimeout = time.Minute

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		log := logger.NewLogger(cfg.Observability)

		ctx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
		defer cancel()

		return database.Migrate(ctx, &log, cfg)
	},
}
