package bagua

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf16"
)

// ErrInvalidNumber is returned when integer input is not a non-negative
// decimal number.
var ErrInvalidNumber = errors.New("bagua: invalid number")

// CodeUnitBits is the width of one encoded text character.
const CodeUnitBits = 16

// Codec encodes and decodes against one Table. A Codec holds no mutable
// state; the zero value is not usable, use NewCodec.
type Codec struct {
	table *Table
}

// NewCodec returns a codec over t. A nil t selects the default table.
func NewCodec(t *Table) *Codec {
	if t == nil {
		t = defaultTable
	}
	return &Codec{table: t}
}

// Table returns the codec's symbol table.
func (c *Codec) Table() *Table {
	return c.table
}

var std = NewCodec(nil)

// EncodeText encodes s with the default table.
func EncodeText(s string) Sequence { return std.EncodeText(s) }

// EncodeInteger encodes a decimal string with the default table.
func EncodeInteger(decimal string) (Sequence, error) { return std.EncodeInteger(decimal) }

// EncodeBits encodes a raw bit-string with the default table.
func EncodeBits(raw string) Sequence { return std.EncodeBits(raw) }

// BitsToSymbols maps a bit-string to symbols with the default table.
func BitsToSymbols(bits string) Sequence { return std.BitsToSymbols(bits) }

// EncodeText writes every UTF-16 code unit of s as 16 bits and maps the
// result to symbols.
func (c *Codec) EncodeText(s string) Sequence {
	return c.BitsToSymbols(TextToBits(s))
}

// EncodeInteger encodes the minimal binary form of a non-negative decimal
// integer of any size. Surrounding whitespace and a leading '+' are
// accepted; anything else that is not a digit fails with ErrInvalidNumber.
func (c *Codec) EncodeInteger(decimal string) (Sequence, error) {
	bits, err := IntegerToBits(decimal)
	if err != nil {
		return nil, err
	}
	return c.BitsToSymbols(bits), nil
}

// EncodeBits drops every character other than '0' and '1' from raw and
// encodes what is left. Nothing left means an empty sequence.
func (c *Codec) EncodeBits(raw string) Sequence {
	return c.BitsToSymbols(CleanBits(raw))
}

// BitsToSymbols right-pads bits with '0' to a multiple of 3 and maps each
// group to its symbol. A group holding anything other than '0' and '1' is
// written as Kun.
func (c *Codec) BitsToSymbols(bits string) Sequence {
	if bits == "" {
		return nil
	}
	n := (len(bits) + BitGroupLen - 1) / BitGroupLen
	if pad := n*BitGroupLen - len(bits); pad > 0 {
		bits += strings.Repeat("0", pad)
	}
	seq := make(Sequence, 0, n)
	for i := 0; i < len(bits); i += BitGroupLen {
		g, ok := ParseBitGroup(bits[i : i+BitGroupLen])
		if !ok {
			g = Kun
		}
		seq = append(seq, c.table.SymbolFor(g))
	}
	return seq
}

// TextToBits renders each UTF-16 code unit of s as a zero-padded 16-bit
// binary string, most significant bit first. Characters above U+FFFF take
// two units (a surrogate pair).
func TextToBits(s string) string {
	units := utf16.Encode([]rune(s))
	var sb strings.Builder
	sb.Grow(len(units) * CodeUnitBits)
	for _, u := range units {
		for shift := CodeUnitBits - 1; shift >= 0; shift-- {
			if u>>uint(shift)&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// IntegerToBits parses a non-negative decimal integer and returns its
// minimal binary form ("0" for zero).
func IntegerToBits(decimal string) (string, error) {
	s := strings.TrimSpace(decimal)
	digits := strings.TrimPrefix(s, "+")
	if digits == "" || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, decimal)
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, decimal)
	}
	return n.Text(2), nil
}

// CleanBits removes every character that is not '0' or '1'.
func CleanBits(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if b := raw[i]; b == '0' || b == '1' {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
