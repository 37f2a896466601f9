/*
Package universal implements the 36-byte chain-agnostic address encoding
used to store, compare and route addresses uniformly across chains.

# Wire format

	Offset  Length  Field
	0       4       SLIP-44 chain ID, unsigned, big-endian
	4       32      Address payload (chain-type-specific layout)

The hex textual form is 0x followed by 72 lower-case hex characters. EVM
and Tron addresses occupy the low-order 20 bytes of the payload slot behind
12 zero bytes; wider formats would occupy the full slot.

# Basic usage

	hexAddr, err := universal.CreateHex(chain.ChainIDFromUint64(1), "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := universal.DecodeHex(hexAddr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(decoded.Slip44, decoded.NativeAddress, decoded.ChainID)

The package-level functions operate on the process-wide chain registry and
dispatch through addrconv's default converter registry, so a converter
added with addrconv.Register extends them to a new chain family. Embedders
that need isolation construct a Codec over their own registry:

	reg := chain.NewRegistry(chain.WithoutSeed())
	fantomSlip44, _ := chain.CustomSlip44(250)
	reg.Register(chain.ChainInfo{ChainID: chain.ChainIDFromUint64(250), Slip44: fantomSlip44, Type: chain.TypeEVM})
	codec := universal.NewCodec(reg)
*/
package universal
