package bagua

import (
	"fmt"
	"strings"
)

// Mode selects how raw input is turned into bits.
type Mode uint8

const (
	ModeText   Mode = iota // free text, 16 bits per code unit
	ModeNumber             // non-negative decimal integer
	ModeBinary             // raw bit-string
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeNumber:
		return "number"
	case ModeBinary:
		return "binary"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// ParseMode parses a mode name. Short aliases are accepted.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "t", "":
		return ModeText, true
	case "number", "num", "n", "int", "integer":
		return ModeNumber, true
	case "binary", "bin", "b", "bits":
		return ModeBinary, true
	default:
		return 0, false
	}
}

// Encode encodes input in mode m with the default table.
func Encode(m Mode, input string) (Sequence, error) { return std.Encode(m, input) }

// Encode dispatches input to the entry point for m. Input that is empty
// or only whitespace yields an empty sequence in every mode.
func (c *Codec) Encode(m Mode, input string) (Sequence, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	switch m {
	case ModeText:
		return c.EncodeText(input), nil
	case ModeNumber:
		return c.EncodeInteger(input)
	case ModeBinary:
		return c.EncodeBits(input), nil
	default:
		return nil, fmt.Errorf("bagua: unknown mode %s", m)
	}
}
