package tron

import (
	"crypto/sha256"
	"testing"

	gotron "github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enclave-hq/chain-utils/chain"
)

var validAddresses = []string{
	"TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZYH",
	"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",
}

func TestToBytes(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()

		for _, address := range validAddresses {
			t.Run(address, func(t *testing.T) {
				t.Parallel()

				slot, err := converter.ToBytes(address)
				require.NoError(t, err)
				require.Len(t, slot, chain.AddressSlotSize)
				assert.Equal(t, make([]byte, 12), slot[:12], "padding bytes must be zero")

				// Cross-check the payload against the gotron-sdk decoder,
				// whose Bytes form is prefix || payload (21 bytes).
				ref, err := gotron.Base58ToAddress(address)
				require.NoError(t, err)
				assert.Equal(t, ref.Bytes()[1:], slot[12:])
			})
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			address string
		}{
			{name: "empty", address: ""},
			{name: "not base58check", address: "invalid"},
			{name: "evm address", address: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"},
			{name: "wrong prefix letter", address: "ALyqzVGLV1srkB7dToTAEqgDSfPtXRJZYH"},
			{name: "too short", address: "TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZY"},
			{name: "excluded alphabet character", address: "TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZY0"},
			{name: "corrupted checksum", address: "TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZYJ"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				slot, err := converter.ToBytes(tt.address)
				require.Error(t, err)
				assert.Nil(t, slot)
			})
		}
	})
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		for _, address := range validAddresses {
			slot, err := converter.ToBytes(address)
			require.NoError(t, err)

			back, err := converter.FromBytes(slot)
			require.NoError(t, err)
			assert.Equal(t, address, back)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()

		for _, size := range []int{0, 20, 21, 25, 31, 33} {
			_, err := converter.FromBytes(make([]byte, size))
			require.ErrorIs(t, err, chain.ErrInvalidLength, "size %d", size)
		}
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}

	for _, address := range validAddresses {
		assert.True(t, converter.IsValid(address), address)
	}

	invalid := []string{
		"",
		"invalid",
		"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
		"TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZYJ", // checksum mismatch
		"TLyqzVGLV1srkB7dToTAEqgDSfPtXRJZY",  // 33 characters
	}
	for _, address := range invalid {
		assert.False(t, converter.IsValid(address), address)
	}
}

func TestDoubleSHA256(t *testing.T) {
	t.Parallel()

	// sha256(sha256("hello")) starts with 9595c9df.
	assert.Equal(t, []byte{0x95, 0x95, 0xc9, 0xdf}, DoubleSHA256([]byte("hello")))
	assert.Len(t, DoubleSHA256(nil), checksumLength)
}

// TestChecksumInjection verifies that the checksum is a swappable
// capability: addresses produced under one checksum are only accepted by a
// converter carrying the same checksum.
func TestChecksumInjection(t *testing.T) {
	t.Parallel()

	altChecksum := func(payload []byte) []byte {
		sum := sha256.Sum256(append([]byte("alt"), payload...))
		return sum[:checksumLength]
	}

	alt := NewAddressConverter(altChecksum)
	mainnet := AddressConverter{}

	slot := make([]byte, chain.AddressSlotSize)
	for i := 0; i < payloadLength; i++ {
		slot[12+i] = byte(i + 1)
	}

	address, err := alt.FromBytes(slot)
	require.NoError(t, err)
	require.Len(t, address, AddressLength)

	assert.True(t, alt.IsValid(address))
	assert.False(t, mainnet.IsValid(address))

	back, err := alt.ToBytes(address)
	require.NoError(t, err)
	assert.Equal(t, slot, back)
}

func TestSupports(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}
	assert.True(t, converter.Supports(chain.TypeTron))
	assert.False(t, converter.Supports(chain.TypeEVM))
	assert.False(t, converter.Supports(chain.TypeCosmos))
}
