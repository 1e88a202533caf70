package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// CatalogConfig holds vault catalog fetch configuration
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig holds persisted file locations
type StoreConfig struct {
	StrategiesPath string `mapstructure:"strategies_path"`
	ChangeLogPath  string `mapstructure:"changelog_path"`
}

// EstimationConfig holds gas estimation configuration
type EstimationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // per-estimation RPC timeout
	Workers int           `mapstructure:"workers"` // concurrent estimations per chain
}

// SyncerConfig holds configuration for the syncer binary
type SyncerConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Catalog      CatalogConfig    `mapstructure:"catalog"`
	Store        StoreConfig      `mapstructure:"store"`
	Estimation   EstimationConfig `mapstructure:"estimation"`
	ChainsPath   string           `mapstructure:"chains_path"`
	DenyListPath string           `mapstructure:"denylist_path"`
}

// LoadSyncerConfig loads configuration for the syncer binary
func LoadSyncerConfig(configFile string, envPath string) (*SyncerConfig, error) {
	v := configureViper("syncer", configFile, envPath)

	// Set defaults
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("store.strategies_path", "data/strategies.json")
	v.SetDefault("store.changelog_path", "data/hits.json")
	v.SetDefault("estimation.timeout", "30s")
	v.SetDefault("estimation.workers", 10)
	v.SetDefault("chains_path", "config/chains.json")
	v.SetDefault("denylist_path", "config/denylist.json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SyncerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Catalog.URL == "" {
		return nil, errors.New("catalog.url is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("HARVEST_SYNCER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Catalog
		"catalog.url",
		"catalog.timeout",
		// Store
		"store.strategies_path",
		"store.changelog_path",
		// Estimation
		"estimation.timeout",
		"estimation.workers",
		// Registries
		"chains_path",
		"denylist_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
