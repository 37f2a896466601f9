package evm

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/enclave-hq/chain-utils/chain"
)

// AddressByteLength is the native width of an EVM address.
const AddressByteLength = 20

// AddressToBytes converts an EVM address string to its 32-byte slot form:
// 12 zero bytes followed by the 20 address bytes. The address must be a
// 0x-prefixed 40-character hex string; case is ignored.
func AddressToBytes(address string) ([]byte, error) {
	if !isHexAddress(address) {
		return nil, fmt.Errorf("%w: not a 0x-prefixed 20-byte hex string: %q", chain.ErrInvalidAddress, address)
	}

	addr := common.HexToAddress(address)

	return common.LeftPadBytes(addr.Bytes(), chain.AddressSlotSize), nil
}

// AddressFromBytes recovers the native address string from a 32-byte slot.
// The 12 padding bytes are discarded without inspection. The result is
// always the lower-case canonical form; case information from the original
// input is not preserved.
func AddressFromBytes(b []byte) (string, error) {
	if len(b) != chain.AddressSlotSize {
		return "", fmt.Errorf("%w: want %d bytes, got %d", chain.ErrInvalidLength, chain.AddressSlotSize, len(b))
	}

	addr := common.BytesToAddress(b[chain.AddressSlotSize-AddressByteLength:])

	return strings.ToLower(addr.Hex()), nil
}

func isHexAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// AddressConverter implements address conversion for EVM-compatible chains.
// It is stateless; the zero value is ready to use.
type AddressConverter struct{}

// ToBytes converts an EVM address string to its 32-byte slot form.
func (e AddressConverter) ToBytes(address string) ([]byte, error) {
	return AddressToBytes(address)
}

// FromBytes recovers the lower-case native address from a 32-byte slot.
func (e AddressConverter) FromBytes(b []byte) (string, error) {
	return AddressFromBytes(b)
}

// IsValid reports whether address is syntactically valid. Mixed-case
// EIP-55 checksums are not verified.
func (e AddressConverter) IsValid(address string) bool {
	return isHexAddress(address)
}

// Supports returns true if this converter supports the given chain type.
func (e AddressConverter) Supports(t chain.ChainType) bool {
	return t == chain.TypeEVM
}
