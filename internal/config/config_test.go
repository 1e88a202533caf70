package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldops/harvest-syncer/internal/config"
)

func TestLoadSyncerConfig_FromEnv(t *testing.T) {
	t.Setenv("HARVEST_SYNCER_CATALOG_URL", "https://api.example.com/vaults")
	t.Setenv("HARVEST_SYNCER_DEBUG", "true")

	cfg, err := config.LoadSyncerConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/vaults", cfg.Catalog.URL)
	assert.True(t, cfg.Debug)

	// Defaults fill in everything not set
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "data/strategies.json", cfg.Store.StrategiesPath)
	assert.Equal(t, "data/hits.json", cfg.Store.ChangeLogPath)
	assert.Equal(t, 30*time.Second, cfg.Estimation.Timeout)
	assert.Equal(t, 10, cfg.Estimation.Workers)
	assert.Equal(t, "config/chains.json", cfg.ChainsPath)
	assert.Equal(t, "config/denylist.json", cfg.DenyListPath)
}

func TestLoadSyncerConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
debug: false
catalog:
  url: https://api.example.com/vaults
  timeout: 10s
estimation:
  timeout: 5s
  workers: 4
chains_path: testdata/chains.json
`), 0o644))

	cfg, err := config.LoadSyncerConfig(configFile, dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/vaults", cfg.Catalog.URL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Estimation.Timeout)
	assert.Equal(t, 4, cfg.Estimation.Workers)
	assert.Equal(t, "testdata/chains.json", cfg.ChainsPath)
	assert.Equal(t, "config/denylist.json", cfg.DenyListPath)
}

func TestLoadSyncerConfig_MissingCatalogURL(t *testing.T) {
	_, err := config.LoadSyncerConfig("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.url is required")
}
