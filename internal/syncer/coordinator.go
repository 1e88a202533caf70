package syncer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/catalog"
	"github.com/yieldops/harvest-syncer/internal/domain"
	"github.com/yieldops/harvest-syncer/internal/gas"
	"github.com/yieldops/harvest-syncer/internal/hitlog"
	"github.com/yieldops/harvest-syncer/internal/logger"
	"github.com/yieldops/harvest-syncer/internal/registry"
	"github.com/yieldops/harvest-syncer/internal/store"
)

// CoordinatorConfig holds tunables for a reconciliation run
type CoordinatorConfig struct {
	// EstimationWorkers bounds concurrent gas estimations per chain
	EstimationWorkers int
}

// Coordinator runs one ChainReconciler per configured chain concurrently,
// sweeps decommissioned strategies afterwards, and persists the results.
type Coordinator struct {
	cfg        CoordinatorConfig
	catalog    catalog.Client
	strategies store.StrategyStore
	changeLog  store.ChangeLogStore
	chains     registry.ChainRegistry
	denyList   registry.DenyListRegistry
	estimator  gas.Estimator
	clock      adapter.Clock
}

// NewCoordinator creates a reconciliation coordinator
func NewCoordinator(
	cfg CoordinatorConfig,
	catalogClient catalog.Client,
	strategies store.StrategyStore,
	changeLog store.ChangeLogStore,
	chains registry.ChainRegistry,
	denyList registry.DenyListRegistry,
	estimator gas.Estimator,
	clock adapter.Clock,
) *Coordinator {
	return &Coordinator{
		cfg:        cfg,
		catalog:    catalogClient,
		strategies: strategies,
		changeLog:  changeLog,
		chains:     chains,
		denyList:   denyList,
		estimator:  estimator,
		clock:      clock,
	}
}

// Run executes one full reconciliation: fetch, per-chain concurrent sync,
// decommission sweep, conditional persistence. Catalog-fetch and store-load
// failures abort the run before any write; per-chain failures are contained
// to their chain and logged.
func (c *Coordinator) Run(ctx context.Context) error {
	start := c.clock.Now()
	runID := ulid.MustNewDefault(start).String()
	l := logger.FromContext(ctx).With(zap.String("run_id", runID))

	vaults, err := c.catalog.FetchVaults(ctx)
	if err != nil {
		return fmt.Errorf("aborting run, catalog fetch failed: %w", err)
	}
	l.Info("fetched vault catalog", zap.Int("vaults", len(vaults)))

	loaded, err := c.strategies.Load(ctx)
	if err != nil {
		return fmt.Errorf("aborting run, strategy list load failed: %w", err)
	}
	l.Info("loaded strategy list", zap.Int("strategies", len(loaded)))

	index := NewStrategyIndex(loaded)
	hits := hitlog.New()

	chains := c.chains.All()
	var dirty atomic.Bool

	pool := pond.NewPool(len(chains), pond.WithContext(ctx))
	for _, chainCfg := range chains {
		pool.Submit(func() {
			// A panicking chain must not take the run down with it; its
			// contribution is simply lost.
			defer func() {
				if rec := recover(); rec != nil {
					l.Error("chain reconciliation failed",
						zap.String("chain", string(chainCfg.ID)),
						zap.Any("panic", rec),
					)
				}
			}()

			c.runChain(ctx, l, chainCfg, vaults, index, hits, &dirty)
		})
	}
	pool.StopAndWait()

	// Anything still untouched was dropped from the catalog entirely
	for _, entry := range index.SweepUnseen() {
		hits.Add(entry.ID, domain.ChangeRemovedDecommissioned)
		dirty.Store(true)
		l.Info("strategy decommissioned",
			zap.String("chain", string(entry.Chain)),
			zap.String("vault", entry.ID),
		)
	}

	if hits.Len() > 0 {
		if err := c.changeLog.Save(ctx, hits.Hits()); err != nil {
			return fmt.Errorf("failed to persist change log: %w", err)
		}
	}

	if dirty.Load() {
		if err := c.strategies.Save(ctx, index.Compact()); err != nil {
			return fmt.Errorf("failed to persist strategy list: %w", err)
		}
	}

	l.Info("reconciliation run completed",
		zap.Duration("duration", c.clock.Since(start)),
		zap.Int("chains", len(chains)),
		zap.Int("strategies", index.Len()),
		zap.Int("hits", hits.Len()),
		zap.Bool("dirty", dirty.Load()),
	)

	return nil
}

// runChain reconciles one chain and folds its dirty signal into the run's
func (c *Coordinator) runChain(
	ctx context.Context,
	l *zap.Logger,
	chainCfg registry.ChainConfig,
	vaults []domain.VaultRecord,
	index *StrategyIndex,
	hits *hitlog.HitLog,
	dirty *atomic.Bool,
) {
	r := NewChainReconciler(chainCfg, c.denyList, index, hits, c.estimator, c.cfg.EstimationWorkers)

	if r.SyncVaults(ctx, vaults) {
		dirty.Store(true)
	}

	l.Info("chain reconciled",
		zap.String("chain", string(chainCfg.ID)),
		zap.Int("added", r.Added()),
		zap.Int("removed", r.Removed()),
		zap.Int("off_chain", r.OffChainCount()),
	)

	if r.OffChainCount() > 0 {
		if r.EstimateGasLimits(ctx) {
			dirty.Store(true)
		}
	}
}
