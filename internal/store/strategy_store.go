package store

import (
	"context"
	"fmt"
	"os"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/domain"
)

const fileMode os.FileMode = 0o644

// StrategyStore persists the tracked strategy list between runs
//
//go:generate mockgen -source=strategy_store.go -destination=../mocks/strategy_store.go -package=mocks -mock_names=StrategyStore=MockStrategyStore
type StrategyStore interface {
	// Load reads the persisted strategy list. A missing file yields an
	// empty list; any other failure is fatal to the run.
	Load(ctx context.Context) ([]*domain.StrategyEntry, error)

	// Save overwrites the persisted strategy list
	Save(ctx context.Context, entries []*domain.StrategyEntry) error
}

// fileStrategyStore is the JSON-file-backed implementation of StrategyStore
type fileStrategyStore struct {
	path string
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewStrategyStore creates a file-backed strategy store
func NewStrategyStore(path string, fs adapter.FileSystem, json adapter.JSON) StrategyStore {
	return &fileStrategyStore{path: path, fs: fs, json: json}
}

// Load reads the persisted strategy list
func (s *fileStrategyStore) Load(_ context.Context) ([]*domain.StrategyEntry, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if s.fs.IsNotExist(err) {
			// First run: start from an empty list
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read strategy list: %w", err)
	}

	var entries []*domain.StrategyEntry
	if err := s.json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse strategy list: %w", err)
	}

	return entries, nil
}

// Save overwrites the persisted strategy list
func (s *fileStrategyStore) Save(_ context.Context, entries []*domain.StrategyEntry) error {
	if entries == nil {
		entries = []*domain.StrategyEntry{}
	}

	data, err := s.json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode strategy list: %w", err)
	}

	if err := s.fs.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write strategy list: %w", err)
	}

	return nil
}
