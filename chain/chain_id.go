package chain

import "strconv"

// ChainID is a chain-native identifier. Most chains identify themselves
// with a number (EVM chain IDs, Tron's 195); a few use a named network
// cluster such as Solana's "mainnet-beta". ChainID normalizes both kinds
// into a single comparable value: a numeric identifier built from a string
// compares equal to the same identifier built from an integer.
//
// The zero value is the absent identifier; see IsZero.
type ChainID struct {
	id      string
	numeric bool
}

// ChainIDFromUint64 returns the ChainID for a numeric native identifier.
func ChainIDFromUint64(v uint64) ChainID {
	return ChainID{id: strconv.FormatUint(v, 10), numeric: true}
}

// ChainIDFromString returns the ChainID for a native identifier given in
// string form. Strings that parse as an unsigned integer are normalized to
// the numeric representation, so ChainIDFromString("1") equals
// ChainIDFromUint64(1).
func ChainIDFromString(s string) ChainID {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ChainIDFromUint64(v)
	}

	return ChainID{id: s}
}

// String returns the canonical string form. This is also the key used for
// reverse lookups in the registry.
func (c ChainID) String() string {
	return c.id
}

// Uint64 returns the numeric value and true when the identifier is numeric.
func (c ChainID) Uint64() (uint64, bool) {
	if !c.numeric {
		return 0, false
	}

	v, err := strconv.ParseUint(c.id, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// IsNumeric reports whether the identifier is numeric.
func (c ChainID) IsNumeric() bool {
	return c.numeric
}

// IsZero reports whether the identifier is absent.
func (c ChainID) IsZero() bool {
	return c.id == ""
}

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (c ChainID) MarshalText() ([]byte, error) {
	return []byte(c.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Numeric strings are
// normalized the same way as ChainIDFromString.
func (c *ChainID) UnmarshalText(b []byte) error {
	*c = ChainIDFromString(string(b))
	return nil
}
