/*
Package addrconv converts blockchain addresses between their chain-native
string form and the fixed 32-byte slot used by the universal address
layout.

The package implements the strategy pattern: each chain type registers a
Converter, and conversions dispatch on the chain.ChainType value. EVM and
Tron converters are pre-registered; adding a chain family means
implementing Converter and registering it once.

# Basic usage

	slot, err := addrconv.ToBytes(chain.TypeEVM, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")
	if err != nil {
		log.Fatal(err)
	}

	address, err := addrconv.FromBytes(chain.TypeEVM, slot)
	if err != nil {
		log.Fatal(err)
	}

	ok := addrconv.IsValid(chain.TypeTron, "TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZYH")

# Slot layout per chain type

	EVM:  12 zero bytes || 20 address bytes. Input is a 0x-prefixed hex
	      string; FromBytes always returns the lower-case form.
	Tron: 12 zero bytes || 20 account bytes. Input is a 34-character
	      base58check string with the 0x41 mainnet prefix; the checksum is
	      verified on the way in and recomputed on the way out.

Solana and Cosmos are declared chain types without a converter; conversions
for them fail with chain.ErrUnsupportedChainType until one is registered
via Register.
*/
package addrconv
