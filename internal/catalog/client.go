package catalog

import (
	"context"
	"fmt"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/domain"
)

// Client defines an interface for fetching the remote vault catalog
//
//go:generate mockgen -source=client.go -destination=../mocks/catalog_client.go -package=mocks -mock_names=Client=MockCatalogClient
type Client interface {
	// FetchVaults fetches and validates the full vault catalog.
	// Any transport, decode or validation failure is fatal to the run.
	FetchVaults(ctx context.Context) ([]domain.VaultRecord, error)
}

// client is the concrete HTTP-backed implementation of Client
type client struct {
	url        string
	httpClient adapter.HTTPClient
}

// NewClient creates a new vault catalog client
func NewClient(url string, httpClient adapter.HTTPClient) Client {
	return &client{
		url:        url,
		httpClient: httpClient,
	}
}

// FetchVaults fetches and validates the full vault catalog
func (c *client) FetchVaults(ctx context.Context) ([]domain.VaultRecord, error) {
	var vaults []domain.VaultRecord
	if err := c.httpClient.Get(ctx, c.url, &vaults); err != nil {
		return nil, fmt.Errorf("failed to fetch vault catalog: %w", err)
	}

	// The catalog is remote data; validate every record before it reaches
	// the reconciler rather than trusting the shape implicitly.
	for i := range vaults {
		if err := vaults[i].Validate(); err != nil {
			return nil, fmt.Errorf("vault catalog record %d: %w", i, err)
		}
	}

	return vaults, nil
}
