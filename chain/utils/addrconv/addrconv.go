package addrconv

import "github.com/enclave-hq/chain-utils/chain"

// Converter defines the strategy interface for address conversion. Each
// chain type implements this interface to provide its specific conversion
// logic between the chain-native string form and the fixed-width slot used
// by the universal address layout.
type Converter interface {
	// ToBytes converts a native address string to its 32-byte slot form.
	// It fails when the address does not satisfy the chain's syntax or
	// checksum rules.
	ToBytes(address string) ([]byte, error)

	// FromBytes recovers the canonical native address string from a
	// 32-byte slot. It is the exact left inverse of ToBytes for every
	// valid address.
	FromBytes(b []byte) (string, error)

	// IsValid reports whether address satisfies the chain's syntax and
	// checksum rules. It never panics.
	IsValid(address string) bool

	// Supports returns true if this converter supports the given chain
	// type.
	Supports(t chain.ChainType) bool
}
