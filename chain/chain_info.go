package chain

// ChainType identifies the address-format family of a chain. It determines
// which address converter applies to the chain's native addresses.
type ChainType string

const (
	TypeEVM    ChainType = "evm"
	TypeTron   ChainType = "tron"
	TypeSolana ChainType = "solana"
	TypeCosmos ChainType = "cosmos"
)

// AddressSlotSize is the width in bytes of the address payload slot in the
// universal address layout. Address converters produce and consume exactly
// this many bytes; 20-byte address families are left-padded with zero
// bytes, wider formats occupy the full slot.
const AddressSlotSize = 32

// ChainInfo is a registry record describing a single chain.
type ChainInfo struct {
	// ChainID is the wallet-facing native identifier.
	ChainID ChainID
	// Slip44 is the canonical cross-chain identifier used on the wire.
	// It must be unique across all registered records.
	Slip44 uint32
	// Name is the display name. No uniqueness constraint.
	Name string
	// Type selects the address converter for this chain.
	Type ChainType
	// Symbol is the native token ticker. Informational only.
	Symbol string
	// Testnet marks test networks. Informational only, not used in lookups.
	Testnet bool
}
