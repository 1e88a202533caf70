package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/catalog"
	"github.com/yieldops/harvest-syncer/internal/config"
	"github.com/yieldops/harvest-syncer/internal/gas"
	"github.com/yieldops/harvest-syncer/internal/logger"
	"github.com/yieldops/harvest-syncer/internal/registry"
	"github.com/yieldops/harvest-syncer/internal/store"
	"github.com/yieldops/harvest-syncer/internal/syncer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSyncerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// One-shot run: a signal cancels the context and aborts the run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "syncer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting harvest syncer")

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonCodec := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Catalog.Timeout)

	// Load static registries
	chains, err := registry.NewChainRegistryLoader(fs, jsonCodec).Load(cfg.ChainsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load chain registry", zap.Error(err), zap.String("path", cfg.ChainsPath))
	}
	denyList, err := registry.NewDenyListRegistryLoader(fs, jsonCodec).Load(cfg.DenyListPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load deny-list registry", zap.Error(err), zap.String("path", cfg.DenyListPath))
	}
	logger.InfoCtx(ctx, "Loaded registries", zap.Int("chains", len(chains.All())))

	// Initialize collaborators
	catalogClient := catalog.NewClient(cfg.Catalog.URL, httpClient)
	strategyStore := store.NewStrategyStore(cfg.Store.StrategiesPath, fs, jsonCodec)
	changeLogStore := store.NewChangeLogStore(cfg.Store.ChangeLogPath, fs, jsonCodec)
	estimator := gas.NewEstimator(adapter.NewEthClientDialer(), cfg.Estimation.Timeout)
	defer estimator.Close()

	coordinator := syncer.NewCoordinator(
		syncer.CoordinatorConfig{EstimationWorkers: cfg.Estimation.Workers},
		catalogClient,
		strategyStore,
		changeLogStore,
		chains,
		denyList,
		estimator,
		clock,
	)

	if err := coordinator.Run(ctx); err != nil {
		logger.ErrorCtx(ctx, err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.InfoCtx(ctx, "Harvest syncer finished")
}
