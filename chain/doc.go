/*
Package chain maintains the authoritative mapping between the platform's
canonical chain identifier (SLIP-44) and every wallet-facing native chain
identifier, plus descriptive metadata per chain.

A Registry holds a forward map keyed by SLIP-44 and a reverse map keyed by
the canonical string form of the native chain ID, so numeric identifiers
given as 1 and "1" resolve identically. Registries seed themselves from a
static table of well-known chains; chains without an official SLIP-44
assignment use values derived into the reserved custom range
[CustomSlip44Base, CustomSlip44Max], which official assignments never
reach.

Registration is last-write-wins on both maps. Registering two different
native chain IDs under one SLIP-44 value leaves the reverse lookup pointing
at the most recent association only; the registry logs a warning instead of
rejecting the write.

# Basic usage

	reg := chain.NewRegistry()

	slip44, err := reg.Slip44ByChainID(chain.ChainIDFromUint64(1)) // 60
	if err != nil {
		log.Fatal(err)
	}

	info, err := reg.InfoBySlip44(slip44)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(info.Name, info.Type) // Ethereum evm

	fantomSlip44, err := chain.CustomSlip44(250)
	if err != nil {
		log.Fatal(err)
	}
	reg.Register(chain.ChainInfo{
		ChainID: chain.ChainIDFromUint64(250),
		Slip44:  fantomSlip44,
		Name:    "Fantom",
		Type:    chain.TypeEVM,
		Symbol:  "FTM",
	})

Default returns a shared process-wide registry for callers that do not
need isolation.
*/
package chain
