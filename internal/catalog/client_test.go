package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldops/harvest-syncer/internal/catalog"
	"github.com/yieldops/harvest-syncer/internal/domain"
	"github.com/yieldops/harvest-syncer/internal/mocks"
)

const catalogURL = "https://api.example.com/vaults"

func TestClient_FetchVaults(t *testing.T) {
	validPayload := `[
		{
			"id": "cake-cakev2",
			"chain": "bsc",
			"earnContractAddress": "0x97e5d50Fe0632A95b9cf1853E744E02f7D816677",
			"earnedToken": "mooCakeV2",
			"strategy": "0xb9aA50a380dE7bA5064D3E60EE1F55E48e32F137",
			"status": "active",
			"lastHarvest": 1660000000
		},
		{
			"id": "quick-matic-eth",
			"chain": "polygon",
			"earnContractAddress": "0x8b89477dFde285849E1B07947E25012206F4D674",
			"earnedToken": "mooQuickMaticEth",
			"strategy": "0x97e5d50Fe0632A95b9cf1853E744E02f7D816677",
			"status": "eol",
			"lastHarvest": 0
		}
	]`

	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockHTTPClient)
		expectedErr string
		expectedLen int
	}{
		{
			name: "successful fetch",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), catalogURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
						return json.Unmarshal([]byte(validPayload), result)
					})
			},
			expectedLen: 2,
		},
		{
			name: "transport error",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), catalogURL, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to fetch vault catalog",
		},
		{
			name: "malformed record fails the whole fetch",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), catalogURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
						return json.Unmarshal([]byte(`[
							{
								"id": "cake-cakev2",
								"chain": "bsc",
								"earnContractAddress": "not-an-address",
								"earnedToken": "mooCakeV2",
								"strategy": "0xb9aA50a380dE7bA5064D3E60EE1F55E48e32F137",
								"status": "active"
							}
						]`), result)
					})
			},
			expectedErr: "vault catalog record 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			tt.setupMocks(mockHTTP)

			c := catalog.NewClient(catalogURL, mockHTTP)
			vaults, err := c.FetchVaults(context.Background())

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, vaults)
				if tt.name == "malformed record fails the whole fetch" {
					assert.ErrorIs(t, err, domain.ErrMalformedVault)
				}
			} else {
				require.NoError(t, err)
				require.Len(t, vaults, tt.expectedLen)
				assert.Equal(t, "cake-cakev2", vaults[0].ID)
				assert.Equal(t, domain.Chain("bsc"), vaults[0].Chain)
				assert.Equal(t, domain.VaultStatusEOL, vaults[1].Status)
			}
		})
	}
}
