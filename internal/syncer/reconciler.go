package syncer

import (
	"context"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/yieldops/harvest-syncer/internal/domain"
	"github.com/yieldops/harvest-syncer/internal/gas"
	"github.com/yieldops/harvest-syncer/internal/hitlog"
	"github.com/yieldops/harvest-syncer/internal/logger"
	"github.com/yieldops/harvest-syncer/internal/registry"
)

// ChainReconciler reconciles one chain's subset of the vault catalog against
// the shared strategy index. One instance per chain per run; SyncVaults and
// EstimateGasLimits are called from that chain's task only.
type ChainReconciler struct {
	cfg             registry.ChainConfig
	denyList        registry.DenyListRegistry
	index           *StrategyIndex
	hits            *hitlog.HitLog
	estimator       gas.Estimator
	estimateWorkers int

	added   int
	removed int

	// offChain collects entries routed to the off-chain bot, for gas-limit
	// estimation after the pass
	offChain []*domain.StrategyEntry
}

// NewChainReconciler creates a reconciler for one chain
func NewChainReconciler(
	cfg registry.ChainConfig,
	denyList registry.DenyListRegistry,
	index *StrategyIndex,
	hits *hitlog.HitLog,
	estimator gas.Estimator,
	estimateWorkers int,
) *ChainReconciler {
	return &ChainReconciler{
		cfg:             cfg,
		denyList:        denyList,
		index:           index,
		hits:            hits,
		estimator:       estimator,
		estimateWorkers: estimateWorkers,
	}
}

// SyncVaults walks every vault record for this chain and reconciles it
// against the shared strategy index. It returns whether any mutation
// occurred. The vault set is read-only and filtered by chain here; callers
// pass the full catalog.
func (r *ChainReconciler) SyncVaults(ctx context.Context, vaults []domain.VaultRecord) bool {
	dirty := false

	for i := range vaults {
		vault := &vaults[i]
		if vault.Chain != r.cfg.ID {
			continue
		}

		entry, found := r.index.Lookup(vault.Chain, vault.ID)

		if !found {
			if vault.Inactive() {
				// Never tracked and no longer harvestable: nothing to do
				continue
			}

			entry = domain.NewStrategyEntry(vault)
			r.index.Insert(entry)
			r.index.MarkSeen(vault.Chain, vault.ID)
			r.hits.Add(vault.ID, domain.ChangeAdded)
			r.added++
			dirty = true

			logger.DebugCtx(ctx, "tracking new vault",
				zap.String("chain", string(vault.Chain)),
				zap.String("vault", vault.ID),
			)

			// Routing is decided silently for new entries; the creation
			// already marked them dirty and no update checks apply.
			r.route(vault, entry, false)
			continue
		}

		if vault.Inactive() {
			r.index.Remove(vault.Chain, vault.ID)
			r.hits.Add(vault.ID, domain.ChangeRemovedInactive)
			r.removed++
			dirty = true

			logger.InfoCtx(ctx, "vault inactive, untracking",
				zap.String("chain", string(vault.Chain)),
				zap.String("vault", vault.ID),
				zap.String("status", string(vault.Status)),
			)
			continue
		}

		r.index.MarkSeen(vault.Chain, vault.ID)

		if r.route(vault, entry, true) {
			dirty = true
		}

		if entry.Strategy != vault.Strategy {
			logger.InfoCtx(ctx, "vault strategy migrated",
				zap.String("chain", string(vault.Chain)),
				zap.String("vault", vault.ID),
				zap.String("old_strategy", entry.Strategy),
				zap.String("new_strategy", vault.Strategy),
			)
			entry.Strategy = vault.Strategy
			r.hits.Add(vault.ID, domain.ChangeStrategyUpdate)
			dirty = true
		}

		if vault.LastHarvest > entry.LastHarvest {
			// Routine harvest progress; dirty but not a logged change
			entry.LastHarvest = vault.LastHarvest
			dirty = true
		}
	}

	return dirty
}

// route decides on-chain vs off-chain harvesting for a vault. The
// noOnChainHarvest flag is only managed on chains that support on-chain
// harvesting; elsewhere routing is off-chain unconditionally. Returns whether
// the flag changed on an already-tracked entry.
func (r *ChainReconciler) route(vault *domain.VaultRecord, entry *domain.StrategyEntry, tracked bool) bool {
	eligible := r.cfg.OnChainHarvest && !r.denyList.IsDenied(vault.Chain, vault.EarnedToken)

	switched := false
	if r.cfg.OnChainHarvest && entry.NoOnChainHarvest != !eligible {
		entry.NoOnChainHarvest = !eligible
		if tracked {
			r.hits.Add(vault.ID, domain.ChangeHarvestSwitch)
			switched = true
		}
	}

	if !eligible {
		r.offChain = append(r.offChain, entry)
	}

	return switched
}

// Added returns the number of entries created during the pass
func (r *ChainReconciler) Added() int {
	return r.added
}

// Removed returns the number of entries removed during the pass
func (r *ChainReconciler) Removed() int {
	return r.removed
}

// OffChainCount returns the number of entries routed to the off-chain bot
func (r *ChainReconciler) OffChainCount() int {
	return len(r.offChain)
}

// EstimateGasLimits issues one harvest gas estimation per off-chain-routed
// entry, all launched together and awaited as a batch. Individual failures
// are logged and swallowed; the previous gasLimit on the entry stays as-is.
// Returns whether at least one estimation succeeded, which signals that the
// persisted state should be saved.
func (r *ChainReconciler) EstimateGasLimits(ctx context.Context) bool {
	if len(r.offChain) == 0 {
		return false
	}

	pool := pond.NewPool(r.estimateWorkers, pond.WithContext(ctx))

	var succeeded atomic.Int32
	for _, entry := range r.offChain {
		pool.Submit(func() {
			limit, err := r.estimator.Estimate(ctx, entry, r.cfg.ID, r.cfg.RPC)
			if err != nil {
				logger.WarnCtx(ctx, "harvest gas estimation failed",
					zap.String("chain", string(r.cfg.ID)),
					zap.String("vault", entry.ID),
					zap.Error(err),
				)
				return
			}
			entry.GasLimit = limit
			succeeded.Add(1)
		})
	}

	pool.StopAndWait()

	logger.InfoCtx(ctx, "gas limits estimated",
		zap.String("chain", string(r.cfg.ID)),
		zap.Int("total", len(r.offChain)),
		zap.Int32("succeeded", succeeded.Load()),
	)

	return succeeded.Load() > 0
}
