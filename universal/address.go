package universal

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/enclave-hq/chain-utils/chain"
	"github.com/enclave-hq/chain-utils/chain/utils/addrconv"
)

const (
	// Slip44Size is the width of the big-endian SLIP-44 field.
	Slip44Size = 4
	// SlotSize is the width of the address payload slot.
	SlotSize = chain.AddressSlotSize
	// Size is the total byte width of a universal address.
	Size = Slip44Size + SlotSize

	// hexLength is the textual width without the 0x prefix.
	hexLength = 2 * Size
)

// Address is the decoded view of a universal address. It is a transient
// value owned by the caller; nothing in this package retains it.
type Address struct {
	// Slip44 is the canonical chain identifier from the wire format.
	Slip44 uint32
	// NativeAddress is the chain-native string form of the address.
	NativeAddress string
	// ChainID is the native chain identifier registered for Slip44 at
	// decode time. ChainIDKnown is false when the registry record carries
	// no native identifier.
	ChainID      chain.ChainID
	ChainIDKnown bool
}

// Codec encodes and decodes universal addresses against a chain registry.
// The registry handle is explicit so tests and embedders can work with
// isolated registries instead of process-wide state.
type Codec struct {
	registry   *chain.Registry
	converters *addrconv.Registry
}

// CodecOption configures a Codec under construction.
type CodecOption func(*Codec)

// WithConverters sets the converter registry the codec dispatches through.
// The default is a fresh addrconv.NewRegistry.
func WithConverters(r *addrconv.Registry) CodecOption {
	return func(c *Codec) {
		c.converters = r
	}
}

// NewCodec returns a codec bound to the given chain registry.
func NewCodec(registry *chain.Registry, opts ...CodecOption) *Codec {
	c := &Codec{
		registry:   registry,
		converters: addrconv.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

var (
	defaultCodecOnce sync.Once
	defaultCodec     *Codec
)

// The default codec dispatches through addrconv's default converter
// registry, so converters added via addrconv.Register are picked up by the
// package-level functions here.
func codec() *Codec {
	defaultCodecOnce.Do(func() {
		defaultCodec = NewCodec(chain.Default(), WithConverters(addrconv.DefaultRegistry()))
	})

	return defaultCodec
}

// Encode builds the 36-byte universal address for a SLIP-44 identifier and
// a chain-native address: 4 big-endian SLIP-44 bytes followed by the
// 32-byte converter slot. It fails with chain.ErrChainNotFound when the
// SLIP-44 value is unregistered and chain.ErrUnsupportedChainType when the
// resolved type has no converter.
func (c *Codec) Encode(slip44 uint32, nativeAddress string) ([]byte, error) {
	chainType, err := c.registry.TypeBySlip44(slip44)
	if err != nil {
		return nil, err
	}

	slot, err := c.converters.ToBytes(chainType, nativeAddress)
	if err != nil {
		return nil, err
	}

	out := make([]byte, Size)
	binary.BigEndian.PutUint32(out[:Slip44Size], slip44)
	copy(out[Slip44Size:], slot)

	return out, nil
}

// Decode splits a 36-byte universal address into its decoded view. The
// native address is reconstructed through the converter for the registered
// chain type, and the native chain ID is re-derived from the registry.
func (c *Codec) Decode(b []byte) (Address, error) {
	if len(b) != Size {
		return Address{}, fmt.Errorf("%w: universal address must be %d bytes, got %d", chain.ErrInvalidLength, Size, len(b))
	}

	slip44 := binary.BigEndian.Uint32(b[:Slip44Size])

	info, err := c.registry.InfoBySlip44(slip44)
	if err != nil {
		return Address{}, err
	}

	nativeAddress, err := c.converters.FromBytes(info.Type, b[Slip44Size:])
	if err != nil {
		return Address{}, err
	}

	return Address{
		Slip44:        slip44,
		NativeAddress: nativeAddress,
		ChainID:       info.ChainID,
		ChainIDKnown:  !info.ChainID.IsZero(),
	}, nil
}

// DecodeHex decodes the hex textual form, with or without the 0x prefix.
func (c *Codec) DecodeHex(s string) (Address, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return Address{}, err
	}

	return c.Decode(b)
}

// Create builds the universal address from a native chain identifier
// instead of a SLIP-44 value. It fails with chain.ErrChainNotFound when the
// native ID is unregistered.
func (c *Codec) Create(id chain.ChainID, nativeAddress string) ([]byte, error) {
	slip44, err := c.registry.Slip44ByChainID(id)
	if err != nil {
		return nil, err
	}

	return c.Encode(slip44, nativeAddress)
}

// CreateHex is Create rendered in the hex textual form.
func (c *Codec) CreateHex(id chain.ChainID, nativeAddress string) (string, error) {
	b, err := c.Create(id, nativeAddress)
	if err != nil {
		return "", err
	}

	return BytesToHex(b)
}

// IsValid reports whether b decodes as a universal address against the
// codec's registry. Failures of any kind become false; no error escapes.
func (c *Codec) IsValid(b []byte) bool {
	_, err := c.Decode(b)
	return err == nil
}

// IsValidHex reports whether s decodes as the hex form of a universal
// address against the codec's registry.
func (c *Codec) IsValidHex(s string) bool {
	_, err := c.DecodeHex(s)
	return err == nil
}

// Encode builds a universal address using the default codec over the
// process-wide chain registry.
func Encode(slip44 uint32, nativeAddress string) ([]byte, error) {
	return codec().Encode(slip44, nativeAddress)
}

// Decode decodes a universal address using the default codec.
func Decode(b []byte) (Address, error) {
	return codec().Decode(b)
}

// DecodeHex decodes the hex form using the default codec.
func DecodeHex(s string) (Address, error) {
	return codec().DecodeHex(s)
}

// Create builds a universal address from a native chain ID using the
// default codec.
func Create(id chain.ChainID, nativeAddress string) ([]byte, error) {
	return codec().Create(id, nativeAddress)
}

// CreateHex is Create rendered in the hex textual form.
func CreateHex(id chain.ChainID, nativeAddress string) (string, error) {
	return codec().CreateHex(id, nativeAddress)
}

// IsValid reports whether b decodes as a universal address with the
// default codec.
func IsValid(b []byte) bool {
	return codec().IsValid(b)
}

// IsValidHex reports whether s decodes as the hex form of a universal
// address with the default codec.
func IsValidHex(s string) bool {
	return codec().IsValidHex(s)
}

// BytesToHex renders a 36-byte universal address as 0x followed by 72
// lower-case hex characters.
func BytesToHex(b []byte) (string, error) {
	if len(b) != Size {
		return "", fmt.Errorf("%w: universal address must be %d bytes, got %d", chain.ErrInvalidLength, Size, len(b))
	}

	return "0x" + hex.EncodeToString(b), nil
}

// HexToBytes parses the hex textual form back into 36 bytes. The 0x prefix
// is optional; after stripping it the input must be exactly 72 hex
// characters.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != hexLength {
		return nil, fmt.Errorf("%w: want %d hex characters, got %d", chain.ErrInvalidLength, hexLength, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrInvalidAddress, err)
	}

	return b, nil
}
