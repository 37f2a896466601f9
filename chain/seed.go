package chain

import "fmt"

// SLIP-44 values for chains without an official assignment are derived as
// CustomSlip44Base + native chain ID. Official assignments top out well
// below one million, so the two namespaces never collide.
const (
	CustomSlip44Base uint32 = 1_000_000
	CustomSlip44Max  uint32 = 1_999_999
)

// CustomSlip44 derives the custom-range SLIP-44 value for a numeric native
// chain ID. This is the same derivation the seed table uses for Arbitrum
// One, Optimism, Base and zkSync Era. Chain IDs above 999999 do not fit in
// the range and fail with ErrCustomSlip44Range.
func CustomSlip44(chainID uint64) (uint32, error) {
	if chainID > uint64(CustomSlip44Max-CustomSlip44Base) {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrCustomSlip44Range, chainID, CustomSlip44Max-CustomSlip44Base)
	}

	return CustomSlip44Base + uint32(chainID), nil
}

// mustCustomSlip44 backs the seed table, whose chain IDs are known to fit.
func mustCustomSlip44(chainID uint64) uint32 {
	slip44, err := CustomSlip44(chainID)
	if err != nil {
		panic(err)
	}

	return slip44
}

// seedChains is the static table loaded into every registry built without
// WithoutSeed. Official SLIP-44 assignments where they exist, custom-range
// values otherwise.
var seedChains = []ChainInfo{
	{ChainID: ChainIDFromUint64(1), Slip44: 60, Name: "Ethereum", Type: TypeEVM, Symbol: "ETH"},
	{ChainID: ChainIDFromUint64(195), Slip44: 195, Name: "Tron", Type: TypeTron, Symbol: "TRX"},
	{ChainID: ChainIDFromUint64(56), Slip44: 714, Name: "BNB Smart Chain", Type: TypeEVM, Symbol: "BNB"},
	{ChainID: ChainIDFromUint64(137), Slip44: 966, Name: "Polygon", Type: TypeEVM, Symbol: "POL"},
	{ChainID: ChainIDFromString("mainnet-beta"), Slip44: 501, Name: "Solana", Type: TypeSolana, Symbol: "SOL"},
	{ChainID: ChainIDFromUint64(43114), Slip44: 9000, Name: "Avalanche C-Chain", Type: TypeEVM, Symbol: "AVAX"},
	{ChainID: ChainIDFromUint64(42161), Slip44: mustCustomSlip44(42161), Name: "Arbitrum One", Type: TypeEVM, Symbol: "ETH"},
	{ChainID: ChainIDFromUint64(10), Slip44: mustCustomSlip44(10), Name: "Optimism", Type: TypeEVM, Symbol: "ETH"},
	{ChainID: ChainIDFromUint64(8453), Slip44: mustCustomSlip44(8453), Name: "Base", Type: TypeEVM, Symbol: "ETH"},
	{ChainID: ChainIDFromUint64(324), Slip44: mustCustomSlip44(324), Name: "zkSync Era", Type: TypeEVM, Symbol: "ETH"},
}
