package domain

import "errors"

var (
	// ErrMalformedVault is returned when a catalog record fails boundary validation
	ErrMalformedVault = errors.New("malformed vault record")

	// ErrUnknownChain is returned when a chain id has no registry entry
	ErrUnknownChain = errors.New("unknown chain")
)
