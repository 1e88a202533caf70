package store

import (
	"context"
	"fmt"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/hitlog"
)

// ChangeLogStore persists the change log of a reconciliation run
//
//go:generate mockgen -source=changelog_store.go -destination=../mocks/changelog_store.go -package=mocks -mock_names=ChangeLogStore=MockChangeLogStore
type ChangeLogStore interface {
	// Save overwrites the persisted change log
	Save(ctx context.Context, hits []hitlog.Hit) error
}

// fileChangeLogStore is the JSON-file-backed implementation of ChangeLogStore
type fileChangeLogStore struct {
	path string
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewChangeLogStore creates a file-backed change log store
func NewChangeLogStore(path string, fs adapter.FileSystem, json adapter.JSON) ChangeLogStore {
	return &fileChangeLogStore{path: path, fs: fs, json: json}
}

// Save overwrites the persisted change log
func (s *fileChangeLogStore) Save(_ context.Context, hits []hitlog.Hit) error {
	data, err := s.json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode change log: %w", err)
	}

	if err := s.fs.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write change log: %w", err)
	}

	return nil
}
