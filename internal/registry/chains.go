package registry

import (
	"fmt"
	"sort"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/domain"
)

// ChainConfig holds the static per-chain configuration
type ChainConfig struct {
	ID  domain.Chain `json:"chainId"`
	RPC string       `json:"rpc"`

	// OnChainHarvest marks chains whose vaults default to the on-chain
	// automation service instead of the off-chain bot.
	OnChainHarvest bool `json:"onChainHarvest"`
}

// ChainRegistry defines read-only access to the configured chains
//
//go:generate mockgen -source=chains.go -destination=../mocks/chain_registry.go -package=mocks -mock_names=ChainRegistry=MockChainRegistry
type ChainRegistry interface {
	// All returns every configured chain, ordered by chain id
	All() []ChainConfig
}

// chainsFile is the shape of chains.json: chain id -> config
type chainsFile map[string]struct {
	RPC            string `json:"rpc"`
	OnChainHarvest bool   `json:"onChainHarvest"`
}

type chainRegistry struct {
	chains map[domain.Chain]ChainConfig
}

// ChainRegistryLoader loads a ChainRegistry from a JSON file
type ChainRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewChainRegistryLoader creates a new chain registry loader
func NewChainRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *ChainRegistryLoader {
	return &ChainRegistryLoader{fs: fs, json: json}
}

// Load reads and parses the chains file
func (l *ChainRegistryLoader) Load(filePath string) (ChainRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read chains file: %w", err)
	}

	var file chainsFile
	if err := l.json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse chains JSON: %w", err)
	}

	reg := &chainRegistry{chains: make(map[domain.Chain]ChainConfig, len(file))}
	for id, cfg := range file {
		if cfg.RPC == "" {
			return nil, fmt.Errorf("chain %q has no rpc endpoint", id)
		}
		reg.chains[domain.Chain(id)] = ChainConfig{
			ID:             domain.Chain(id),
			RPC:            cfg.RPC,
			OnChainHarvest: cfg.OnChainHarvest,
		}
	}

	return reg, nil
}

// All returns every configured chain, ordered by chain id
func (r *chainRegistry) All() []ChainConfig {
	all := make([]ChainConfig, 0, len(r.chains))
	for _, cfg := range r.chains {
		all = append(all, cfg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
