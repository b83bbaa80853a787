package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "tracker.db", cfg.Database.DSN)
	assert.Equal(t, "cookie", cfg.Session.Store)
	assert.Equal(t, "tracker_session", cfg.Session.Name)
	assert.Zero(t, cfg.Session.MaxAge)
	assert.Empty(t, cfg.Seed.CatalogPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_DATABASE_DRIVER", "postgres")
	t.Setenv("APP_SESSION_SECRET", "s3cret")
	t.Setenv("APP_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 9090, cfg.App.Port)
}

func TestLoad_ConfigFileExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TRACKER_DSN", "host=db user=tracker dbname=tracker")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	content := []byte(`
app:
  port: 8081
database:
  driver: postgres
  dsn: ${TRACKER_DSN}
session:
  store: redis
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=tracker dbname=tracker", cfg.Database.DSN)
	assert.Equal(t, "redis", cfg.Session.Store)
	// unset keys keep their defaults
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}
