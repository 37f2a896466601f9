package chain

import "errors"

var (
	// ErrChainNotFound is returned when a SLIP-44 or native chain
	// identifier has no registry entry.
	ErrChainNotFound = errors.New("chain not found in registry")

	// ErrUnsupportedChainType is returned when a chain resolves to a type
	// that has no address converter registered.
	ErrUnsupportedChainType = errors.New("no address converter registered for chain type")

	// ErrInvalidAddress is returned when a native address fails its
	// chain's syntax or checksum rules.
	ErrInvalidAddress = errors.New("invalid address format")

	// ErrInvalidLength is returned when fixed-width binary or hex input
	// does not match the required byte or character count.
	ErrInvalidLength = errors.New("invalid length")

	// ErrCustomSlip44Range is returned when a native chain ID cannot be
	// mapped into the custom SLIP-44 range without leaving it.
	ErrCustomSlip44Range = errors.New("chain ID outside custom SLIP-44 range")
)
