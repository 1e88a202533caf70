package registry

import (
	"fmt"
	"strings"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/domain"
)

// DenyListRegistry defines the interface for on-chain-harvest deny-list lookups
//
//go:generate mockgen -source=denylist.go -destination=../mocks/denylist_registry.go -package=mocks -mock_names=DenyListRegistry=MockDenyListRegistry
type DenyListRegistry interface {
	// IsDenied checks if an earned token is excluded from on-chain harvesting
	// for a given chain
	IsDenied(chain domain.Chain, earnedToken string) bool
}

// DenyListData represents the structure of the denylist.json file.
// Key format: chain id -> list of earned tokens
type DenyListData map[string][]string

// denyListRegistry is the internal implementation of DenyListRegistry
type denyListRegistry struct {
	// Fast lookup map: "chain:token" -> true
	tokens map[string]bool
}

// DenyListRegistryLoader loads a DenyListRegistry from a JSON file
type DenyListRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewDenyListRegistryLoader creates a new deny-list registry loader
func NewDenyListRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *DenyListRegistryLoader {
	return &DenyListRegistryLoader{fs: fs, json: json}
}

// Load reads and parses the deny-list file
func (l *DenyListRegistryLoader) Load(filePath string) (DenyListRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read denylist file: %w", err)
	}

	var denyListData DenyListData
	if err := l.json.Unmarshal(data, &denyListData); err != nil {
		return nil, fmt.Errorf("failed to parse denylist JSON: %w", err)
	}

	dl := &denyListRegistry{
		tokens: make(map[string]bool),
	}

	for chain, tokens := range denyListData {
		normalizedChain := strings.ToLower(chain)
		for _, token := range tokens {
			key := fmt.Sprintf("%s:%s", normalizedChain, strings.ToLower(token))
			dl.tokens[key] = true
		}
	}

	return dl, nil
}

// IsDenied checks if an earned token is excluded from on-chain harvesting
// for a given chain
func (d *denyListRegistry) IsDenied(chain domain.Chain, earnedToken string) bool {
	if d == nil {
		return false
	}
	key := fmt.Sprintf("%s:%s", strings.ToLower(string(chain)), strings.ToLower(earnedToken))
	return d.tokens[key]
}
