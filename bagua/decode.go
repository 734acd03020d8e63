package bagua

import (
	"strings"
	"unicode/utf16"
)

// SymbolsToBits maps seq back to bits with the default table.
func SymbolsToBits(seq Sequence) string { return std.SymbolsToBits(seq) }

// DecodeToText decodes seq with the default table.
func DecodeToText(seq Sequence) string { return std.DecodeToText(seq) }

// DecodeString decodes a glyph string with the default table.
func DecodeString(s string) string { return std.DecodeString(s) }

// SymbolsToBits joins the bit groups of seq. Symbols outside the table are
// skipped.
func (c *Codec) SymbolsToBits(seq Sequence) string {
	var sb strings.Builder
	sb.Grow(len(seq) * BitGroupLen)
	for _, s := range seq {
		if g, ok := c.table.BitGroupFor(s); ok {
			sb.WriteString(g.Bits())
		}
	}
	return sb.String()
}

// DecodeToText reverses EncodeText. Foreign symbols, a trailing group
// shorter than 16 bits, and zero code units are dropped; it never fails.
func (c *Codec) DecodeToText(seq Sequence) string {
	return BitsToText(c.SymbolsToBits(seq))
}

// DecodeString is DecodeToText over the runes of s.
func (c *Codec) DecodeString(s string) string {
	return c.DecodeToText(ParseSequence(s))
}

// BitsToText reads consecutive 16-bit code units from bits. Incomplete
// trailing units and units equal to zero are dropped. Surrogate pairs are
// recombined; an unpaired surrogate becomes U+FFFD.
func BitsToText(bits string) string {
	units := make([]uint16, 0, len(bits)/CodeUnitBits)
	for i := 0; i+CodeUnitBits <= len(bits); i += CodeUnitBits {
		u, ok := parseCodeUnit(bits[i : i+CodeUnitBits])
		if !ok || u == 0 {
			continue
		}
		units = append(units, u)
	}
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}

func parseCodeUnit(chunk string) (uint16, bool) {
	var u uint16
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case '0':
			u <<= 1
		case '1':
			u = u<<1 | 1
		default:
			return 0, false
		}
	}
	return u, true
}
