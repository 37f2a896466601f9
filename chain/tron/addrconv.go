package tron

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/common"

	"github.com/enclave-hq/chain-utils/chain"
	"github.com/enclave-hq/chain-utils/internal/base58"
)

const (
	// AddressLength is the base58 form length of a mainnet address.
	AddressLength = 34
	// PrefixMainnet is the network prefix byte of mainnet addresses.
	PrefixMainnet byte = 0x41

	payloadLength  = 20
	checksumLength = 4
	// rawLength is prefix + payload + checksum.
	rawLength = 1 + payloadLength + checksumLength
)

var addressPattern = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)

// ChecksumFunc computes the 4-byte integrity tag appended to the prefixed
// address payload before base58 encoding. Implementations must be
// deterministic. Mainnet uses DoubleSHA256; anything weaker must not leave
// a test.
type ChecksumFunc func(payload []byte) []byte

// DoubleSHA256 is the mainnet checksum: the first 4 bytes of
// sha256(sha256(payload)).
func DoubleSHA256(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	return second[:checksumLength]
}

// AddressConverter implements address conversion for Tron. The zero value
// uses the mainnet DoubleSHA256 checksum; NewAddressConverter injects an
// alternative.
type AddressConverter struct {
	checksum ChecksumFunc
}

// NewAddressConverter returns a converter using the given checksum
// function. Pass nil for the mainnet default.
func NewAddressConverter(checksum ChecksumFunc) AddressConverter {
	return AddressConverter{checksum: checksum}
}

func (t AddressConverter) checksumFunc() ChecksumFunc {
	if t.checksum == nil {
		return DoubleSHA256
	}

	return t.checksum
}

// ToBytes converts a base58check Tron address to its 32-byte slot form:
// 12 zero bytes followed by the 20-byte account payload. The network prefix
// and checksum are validated and dropped.
func (t AddressConverter) ToBytes(address string) ([]byte, error) {
	raw, err := t.decodeCheck(address)
	if err != nil {
		return nil, err
	}

	return common.LeftPadBytes(raw[1:1+payloadLength], chain.AddressSlotSize), nil
}

// FromBytes rebuilds the mainnet base58check address from a 32-byte slot:
// the last 20 bytes are prefixed with PrefixMainnet, the checksum is
// recomputed and appended, and the 25 raw bytes are base58-encoded.
func (t AddressConverter) FromBytes(b []byte) (string, error) {
	if len(b) != chain.AddressSlotSize {
		return "", fmt.Errorf("%w: want %d bytes, got %d", chain.ErrInvalidLength, chain.AddressSlotSize, len(b))
	}

	raw := make([]byte, 0, rawLength)
	raw = append(raw, PrefixMainnet)
	raw = append(raw, b[chain.AddressSlotSize-payloadLength:]...)
	raw = append(raw, t.checksumFunc()(raw)...)

	return base58.Encode(raw), nil
}

// IsValid reports whether address is a well-formed mainnet address with a
// matching checksum.
func (t AddressConverter) IsValid(address string) bool {
	_, err := t.decodeCheck(address)
	return err == nil
}

// Supports returns true if this converter supports the given chain type.
func (t AddressConverter) Supports(ct chain.ChainType) bool {
	return ct == chain.TypeTron
}

// decodeCheck validates syntax and checksum and returns the 25 raw bytes.
func (t AddressConverter) decodeCheck(address string) ([]byte, error) {
	if !addressPattern.MatchString(address) {
		return nil, fmt.Errorf("%w: not a %d-character base58 Tron address: %q", chain.ErrInvalidAddress, AddressLength, address)
	}

	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", chain.ErrInvalidAddress, address, err)
	}
	if len(raw) != rawLength {
		return nil, fmt.Errorf("%w: %q decodes to %d bytes, want %d", chain.ErrInvalidLength, address, len(raw), rawLength)
	}

	want := t.checksumFunc()(raw[:1+payloadLength])
	if !bytes.Equal(raw[rawLength-checksumLength:], want) {
		return nil, fmt.Errorf("%w: checksum mismatch for %q", chain.ErrInvalidAddress, address)
	}

	return raw, nil
}
