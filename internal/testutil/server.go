// Package testutil builds a fully wired Server on a throwaway SQLite file.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/cookbook/internal/config"
	"github.com/deppfellow/cookbook/internal/database"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewConfig returns the default config pointed at a database in t.TempDir().
// Rate limiting is off so tests can fire requests freely.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	cfg.Observability.Environment = "test"
	cfg.Database.Path = filepath.Join(t.TempDir(), "cookbook.db")
	cfg.Server.RateLimit = 0
	return cfg
}

// NewServer migrates and opens a database for cfg (NewConfig when nil) and
// closes it when the test ends.
func NewServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	if cfg == nil {
		cfg = NewConfig(t)
	}
	logger := zerolog.Nop()

	require.NoError(t, database.Migrate(context.Background(), &logger, cfg))

	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.DB.Close() })

	return s
}
