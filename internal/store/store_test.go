package store_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldops/harvest-syncer/internal/domain"
	"github.com/yieldops/harvest-syncer/internal/hitlog"
	"github.com/yieldops/harvest-syncer/internal/mocks"
	"github.com/yieldops/harvest-syncer/internal/store"
)

const strategiesPath = "data/strategies.json"

func TestStrategyStore_Load(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr string
		expectedLen int
	}{
		{
			name: "successful load",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile(strategiesPath).
					Return([]byte(`[
						{
							"id": "cake-cakev2",
							"chain": "bsc",
							"earnContractAddress": "0x97e5d50Fe0632A95b9cf1853E744E02f7D816677",
							"earnedToken": "mooCakeV2",
							"strategy": "0xb9aA50a380dE7bA5064D3E60EE1F55E48e32F137",
							"lastHarvest": 1660000000
						}
					]`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedLen: 1,
		},
		{
			name: "missing file yields empty list",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile(strategiesPath).
					Return(nil, os.ErrNotExist)
				mockFS.
					EXPECT().
					IsNotExist(os.ErrNotExist).
					Return(true)
			},
			expectedLen: 0,
		},
		{
			name: "read error other than not-exist",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile(strategiesPath).
					Return(nil, assert.AnError)
				mockFS.
					EXPECT().
					IsNotExist(assert.AnError).
					Return(false)
			},
			expectedErr: "failed to read strategy list",
		},
		{
			name: "parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				data := []byte(`not json`)
				mockFS.
					EXPECT().
					ReadFile(strategiesPath).
					Return(data, nil)
				mockJSON.
					EXPECT().
					Unmarshal(data, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to parse strategy list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			s := store.NewStrategyStore(strategiesPath, mockFS, mockJSON)
			entries, err := s.Load(context.Background())

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tt.expectedLen)
			}
		})
	}
}

func TestStrategyStore_Save(t *testing.T) {
	entries := []*domain.StrategyEntry{
		{
			ID:                  "cake-cakev2",
			Chain:               "bsc",
			EarnContractAddress: "0x97e5d50Fe0632A95b9cf1853E744E02f7D816677",
			EarnedToken:         "mooCakeV2",
			Strategy:            "0xb9aA50a380dE7bA5064D3E60EE1F55E48e32F137",
			LastHarvest:         1660000000,
		},
	}

	t.Run("full rewrite of the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := mocks.NewMockFileSystem(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)

		encoded := []byte(`[{"id":"cake-cakev2"}]`)
		mockJSON.
			EXPECT().
			MarshalIndent(entries, "", "  ").
			Return(encoded, nil)
		mockFS.
			EXPECT().
			WriteFile(strategiesPath, encoded, os.FileMode(0o644)).
			Return(nil)

		s := store.NewStrategyStore(strategiesPath, mockFS, mockJSON)
		assert.NoError(t, s.Save(context.Background(), entries))
	})

	t.Run("nil list is written as empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := mocks.NewMockFileSystem(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)

		mockJSON.
			EXPECT().
			MarshalIndent(gomock.Any(), "", "  ").
			DoAndReturn(func(v interface{}, prefix, indent string) ([]byte, error) {
				list, ok := v.([]*domain.StrategyEntry)
				require.True(t, ok)
				require.NotNil(t, list)
				return json.MarshalIndent(v, prefix, indent)
			})
		mockFS.
			EXPECT().
			WriteFile(strategiesPath, []byte("[]"), os.FileMode(0o644)).
			Return(nil)

		s := store.NewStrategyStore(strategiesPath, mockFS, mockJSON)
		assert.NoError(t, s.Save(context.Background(), nil))
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := mocks.NewMockFileSystem(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)

		mockJSON.
			EXPECT().
			MarshalIndent(entries, "", "  ").
			Return([]byte("[]"), nil)
		mockFS.
			EXPECT().
			WriteFile(strategiesPath, gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		s := store.NewStrategyStore(strategiesPath, mockFS, mockJSON)
		err := s.Save(context.Background(), entries)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write strategy list")
	})
}

func TestChangeLogStore_Save(t *testing.T) {
	const hitsPath = "data/hits.json"

	t.Run("writes scalar and array hit shapes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := mocks.NewMockFileSystem(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)

		hits := []hitlog.Hit{
			{ID: "v1", Kinds: []domain.ChangeKind{domain.ChangeAdded}},
			{ID: "v2", Kinds: []domain.ChangeKind{
				domain.ChangeStrategyUpdate,
				domain.ChangeHarvestSwitch,
			}},
		}

		mockJSON.
			EXPECT().
			MarshalIndent(hits, "", "  ").
			DoAndReturn(func(v interface{}, prefix, indent string) ([]byte, error) {
				return json.MarshalIndent(v, prefix, indent)
			})
		mockFS.
			EXPECT().
			WriteFile(hitsPath, gomock.Any(), os.FileMode(0o644)).
			DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
				assert.JSONEq(t, `[
					{"id": "v1", "type": "added"},
					{"id": "v2", "type": ["strategy update", "on-chain-harvest switch"]}
				]`, string(data))
				return nil
			})

		s := store.NewChangeLogStore(hitsPath, mockFS, mockJSON)
		assert.NoError(t, s.Save(context.Background(), hits))
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := mocks.NewMockFileSystem(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)

		mockJSON.
			EXPECT().
			MarshalIndent(gomock.Any(), "", "  ").
			Return([]byte("[]"), nil)
		mockFS.
			EXPECT().
			WriteFile(hitsPath, gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		s := store.NewChangeLogStore(hitsPath, mockFS, mockJSON)
		err := s.Save(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write change log")
	})
}
