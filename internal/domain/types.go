package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents a blockchain network identifier (e.g. "bsc", "polygon")
type Chain string

// VaultStatus represents the lifecycle status reported by the vault catalog
type VaultStatus string

const (
	VaultStatusActive VaultStatus = "active"
	VaultStatusPaused VaultStatus = "paused"
	VaultStatusEOL    VaultStatus = "eol"
)

// VaultRecord is one vault as reported by the remote catalog.
// Records are immutable for the duration of a run.
type VaultRecord struct {
	ID                  string      `json:"id"`
	Chain               Chain       `json:"chain"`
	EarnContractAddress string      `json:"earnContractAddress"`
	EarnedToken         string      `json:"earnedToken"`
	Strategy            string      `json:"strategy"`
	Status              VaultStatus `json:"status"`
	LastHarvest         int64       `json:"lastHarvest"`
}

// Inactive reports whether the vault should no longer be harvested
func (v *VaultRecord) Inactive() bool {
	return v.Status == VaultStatusEOL || v.Status == VaultStatusPaused
}

// Validate checks that the record has the shape the reconciler depends on.
// The catalog is remote and untrusted, so this runs at the fetch boundary.
func (v *VaultRecord) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedVault)
	}
	if v.Chain == "" {
		return fmt.Errorf("%w: vault %q has no chain", ErrMalformedVault, v.ID)
	}
	if v.Status == "" {
		return fmt.Errorf("%w: vault %q has no status", ErrMalformedVault, v.ID)
	}
	if !common.IsHexAddress(v.EarnContractAddress) {
		return fmt.Errorf("%w: vault %q has invalid earnContractAddress %q", ErrMalformedVault, v.ID, v.EarnContractAddress)
	}
	if !common.IsHexAddress(v.Strategy) {
		return fmt.Errorf("%w: vault %q has invalid strategy %q", ErrMalformedVault, v.ID, v.Strategy)
	}
	return nil
}

// StrategyEntry is the persisted counterpart of a VaultRecord that is
// actively tracked for harvesting.
type StrategyEntry struct {
	ID                  string `json:"id"`
	Chain               Chain  `json:"chain"`
	EarnContractAddress string `json:"earnContractAddress"`
	EarnedToken         string `json:"earnedToken"`
	Strategy            string `json:"strategy"`
	LastHarvest         int64  `json:"lastHarvest"`

	// NoOnChainHarvest routes the vault to the off-chain bot even on chains
	// that default to on-chain harvesting. Absent means "use chain default".
	NoOnChainHarvest bool `json:"noOnChainHarvest,omitempty"`

	// GasLimit is the most recent successful harvest gas estimate,
	// with the safety multiplier applied. Zero until first estimated.
	GasLimit uint64 `json:"gasLimit,omitempty"`
}

// NewStrategyEntry creates a strategy entry from the vault's current fields
func NewStrategyEntry(v *VaultRecord) *StrategyEntry {
	return &StrategyEntry{
		ID:                  v.ID,
		Chain:               v.Chain,
		EarnContractAddress: v.EarnContractAddress,
		EarnedToken:         v.EarnedToken,
		Strategy:            v.Strategy,
		LastHarvest:         v.LastHarvest,
	}
}

// ChangeKind tags one kind of change recorded against a vault id
type ChangeKind string

// Persisted change-kind tags. These are wire values; renaming them breaks
// consumers of the change log.
const (
	ChangeAdded                 ChangeKind = "added"
	ChangeRemovedInactive       ChangeKind = "removed, inactive"
	ChangeRemovedDecommissioned ChangeKind = "removed, decomissioned"
	ChangeStrategyUpdate        ChangeKind = "strategy update"
	ChangeHarvestSwitch         ChangeKind = "on-chain-harvest switch"
)
