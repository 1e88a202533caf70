package syncer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/yieldops/harvest-syncer/internal/domain"
	"github.com/yieldops/harvest-syncer/internal/logger"
)

// entryKey identifies a strategy entry. Vault ids are only unique within a
// chain, so the chain is part of the key.
type entryKey struct {
	chain domain.Chain
	id    string
}

// StrategyIndex holds the shared strategy list for a run: a lookup map keyed
// by (chain, id), the original relative order of entries, and the set of keys
// encountered this run. Chain reconcilers run in parallel over disjoint chain
// partitions but share this structure, so every operation takes the mutex.
// Entry field mutation is left to the owning chain's reconciler.
type StrategyIndex struct {
	mu      sync.Mutex
	entries map[entryKey]*domain.StrategyEntry
	order   []entryKey
	seen    map[entryKey]bool
}

// NewStrategyIndex builds an index from the persisted strategy list,
// preserving its relative order. Duplicate (chain, id) pairs keep the first
// occurrence.
func NewStrategyIndex(entries []*domain.StrategyEntry) *StrategyIndex {
	idx := &StrategyIndex{
		entries: make(map[entryKey]*domain.StrategyEntry, len(entries)),
		order:   make([]entryKey, 0, len(entries)),
		seen:    make(map[entryKey]bool),
	}

	for _, entry := range entries {
		key := entryKey{chain: entry.Chain, id: entry.ID}
		if _, ok := idx.entries[key]; ok {
			logger.Warn("duplicate strategy entry in persisted list, keeping first",
				zap.String("chain", string(entry.Chain)),
				zap.String("id", entry.ID),
			)
			continue
		}
		idx.entries[key] = entry
		idx.order = append(idx.order, key)
	}

	return idx
}

// Lookup returns the tracked entry for a vault, if any
func (x *StrategyIndex) Lookup(chain domain.Chain, id string) (*domain.StrategyEntry, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entry, ok := x.entries[entryKey{chain: chain, id: id}]
	return entry, ok
}

// Insert adds a newly tracked entry at the end of the list
func (x *StrategyIndex) Insert(entry *domain.StrategyEntry) {
	x.mu.Lock()
	defer x.mu.Unlock()

	key := entryKey{chain: entry.Chain, id: entry.ID}
	if _, ok := x.entries[key]; ok {
		return
	}
	x.entries[key] = entry
	x.order = append(x.order, key)
}

// Remove drops an entry from the list. The order slot stays behind as a
// tombstone and is skipped during compaction.
func (x *StrategyIndex) Remove(chain domain.Chain, id string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.entries, entryKey{chain: chain, id: id})
}

// MarkSeen records that the vault behind an entry was observed active this run
func (x *StrategyIndex) MarkSeen(chain domain.Chain, id string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.seen[entryKey{chain: chain, id: id}] = true
}

// Seen reports whether a vault was observed active this run
func (x *StrategyIndex) Seen(chain domain.Chain, id string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.seen[entryKey{chain: chain, id: id}]
}

// SweepUnseen removes and returns, in list order, every entry whose vault was
// not encountered this run. These are vaults dropped from the catalog
// entirely, as opposed to vaults marked inactive.
func (x *StrategyIndex) SweepUnseen() []*domain.StrategyEntry {
	x.mu.Lock()
	defer x.mu.Unlock()

	var swept []*domain.StrategyEntry
	for _, key := range x.order {
		entry, ok := x.entries[key]
		if !ok || x.seen[key] {
			continue
		}
		swept = append(swept, entry)
		delete(x.entries, key)
	}
	return swept
}

// Compact rebuilds the output list from surviving entries, preserving their
// existing relative order
func (x *StrategyIndex) Compact() []*domain.StrategyEntry {
	x.mu.Lock()
	defer x.mu.Unlock()

	compacted := make([]*domain.StrategyEntry, 0, len(x.entries))
	for _, key := range x.order {
		if entry, ok := x.entries[key]; ok {
			compacted = append(compacted, entry)
		}
	}
	return compacted
}

// Len returns the number of live entries
func (x *StrategyIndex) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	return len(x.entries)
}
