// Package base58 implements Bitcoin-alphabet base-58 encoding and decoding
// with leading-zero preservation: every leading zero byte is rendered as a
// leading '1' character and restored on decode. A plain big-integer
// conversion would silently drop those bytes.
package base58

import (
	"errors"
	"fmt"
	"math/big"
)

// Alphabet is the Bitcoin-style base-58 alphabet. It omits the easily
// confused characters 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidCharacter is returned by Decode when the input contains a
// character outside the alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

var radix = big.NewInt(58)

var decodeTable = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for i, c := range Alphabet {
		t[c] = int8(i)
	}

	return t
}()

// Encode renders input as a base-58 string. Leading zero bytes become
// leading '1' characters. The empty input encodes to the empty string.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(input[zeros:])
	mod := new(big.Int)

	// A byte carries log(256)/log(58) ≈ 1.37 base-58 digits.
	out := make([]byte, 0, len(input)*138/100+1)
	for x.Sign() > 0 {
		x.DivMod(x, radix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}

	for i := 0; i < zeros; i++ {
		out = append(out, '1')
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// Decode parses a base-58 string back into bytes. Leading '1' characters
// become leading zero bytes. It fails with ErrInvalidCharacter on any
// character outside the alphabet.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == '1' {
		zeros++
	}

	x := new(big.Int)
	digit := new(big.Int)
	for i, c := range input {
		if c > 127 || decodeTable[c] < 0 {
			return nil, fmt.Errorf("%w %q at index %d", ErrInvalidCharacter, c, i)
		}
		digit.SetInt64(int64(decodeTable[c]))
		x.Mul(x, radix)
		x.Add(x, digit)
	}

	body := x.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)

	return out, nil
}
