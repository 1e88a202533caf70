// Package gas estimates harvest gas limits for off-chain-routed strategies.
package gas

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/yieldops/harvest-syncer/internal/adapter"
	"github.com/yieldops/harvest-syncer/internal/domain"
)

// harvestCallData is the 4-byte selector of the strategy contract's harvest()
var harvestCallData = common.FromHex("0x4641257d")

// Safety multiplier applied to raw estimates (x1.5). Harvest gas usage moves
// with pool state between estimation and execution.
const (
	gasMarginNum = 3
	gasMarginDen = 2
)

// Estimator estimates the gas limit for harvesting one strategy
//
//go:generate mockgen -source=estimator.go -destination=../mocks/estimator.go -package=mocks -mock_names=Estimator=MockEstimator
type Estimator interface {
	// Estimate returns the gas limit for calling harvest() on the entry's
	// strategy contract, with the safety margin applied. Failures are
	// independent per entry and never fatal to a run.
	Estimate(ctx context.Context, entry *domain.StrategyEntry, chain domain.Chain, rpcURL string) (uint64, error)

	// Close releases all cached RPC connections
	Close()
}

// estimator implements Estimator over go-ethereum RPC clients, caching one
// client per RPC endpoint for the lifetime of a run
type estimator struct {
	dialer  adapter.EthClientDialer
	timeout time.Duration

	mu      sync.Mutex
	clients map[string]adapter.EthClient
}

// NewEstimator creates a gas estimator with a bounded per-call timeout
func NewEstimator(dialer adapter.EthClientDialer, timeout time.Duration) Estimator {
	return &estimator{
		dialer:  dialer,
		timeout: timeout,
		clients: make(map[string]adapter.EthClient),
	}
}

// Estimate returns the gas limit for calling harvest() on the entry's strategy contract
func (e *estimator) Estimate(ctx context.Context, entry *domain.StrategyEntry, chain domain.Chain, rpcURL string) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	client, err := e.client(callCtx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to dial %s rpc: %w", chain, err)
	}

	to := common.HexToAddress(entry.Strategy)
	gas, err := client.EstimateGas(callCtx, ethereum.CallMsg{
		To:   &to,
		Data: harvestCallData,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to estimate harvest gas for %s: %w", entry.ID, err)
	}

	return gas * gasMarginNum / gasMarginDen, nil
}

// client returns the cached client for an endpoint, dialing on first use
func (e *estimator) client(ctx context.Context, rpcURL string) (adapter.EthClient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if client, ok := e.clients[rpcURL]; ok {
		return client, nil
	}

	client, err := e.dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	e.clients[rpcURL] = client
	return client, nil
}

// Close releases all cached RPC connections
func (e *estimator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for url, client := range e.clients {
		client.Close()
		delete(e.clients, url)
	}
}
