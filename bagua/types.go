package bagua

import (
	"fmt"
	"strings"
)

// Trigram identifies one of the eight trigrams. Its numeric value is the
// 3-bit group it stands for, read most significant bit first.
type Trigram uint8

const (
	Kun  Trigram = iota // 000 ☷
	Gen                 // 001 ☶
	Kan                 // 010 ☵
	Xun                 // 011 ☴
	Zhen                // 100 ☳
	Li                  // 101 ☲
	Dui                 // 110 ☱
	Qian                // 111 ☰
)

// NumTrigrams is the size of the alphabet.
const NumTrigrams = 8

// BitGroupLen is the number of bits carried by one symbol.
const BitGroupLen = 3

// String returns the pinyin name.
func (t Trigram) String() string {
	switch t {
	case Kun:
		return "kun"
	case Gen:
		return "gen"
	case Kan:
		return "kan"
	case Xun:
		return "xun"
	case Zhen:
		return "zhen"
	case Li:
		return "li"
	case Dui:
		return "dui"
	case Qian:
		return "qian"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Bits returns the BitGroup of t, e.g. "101" for Li.
func (t Trigram) Bits() string {
	t &= 7
	var buf [BitGroupLen]byte
	for i := range buf {
		if t&(Trigram(4)>>i) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf[:])
}

// ParseBitGroup parses a 3-character binary group.
func ParseBitGroup(s string) (Trigram, bool) {
	if len(s) != BitGroupLen {
		return 0, false
	}
	var t Trigram
	for i := 0; i < BitGroupLen; i++ {
		switch s[i] {
		case '0':
			t <<= 1
		case '1':
			t = t<<1 | 1
		default:
			return 0, false
		}
	}
	return t, true
}

// ParseTrigram resolves a pinyin name, a Chinese name, a glyph, or a bit
// group to a Trigram.
func ParseTrigram(s string) (Trigram, bool) {
	s = strings.TrimSpace(s)
	if t, ok := ParseBitGroup(s); ok {
		return t, true
	}
	lower := strings.ToLower(s)
	for t := Trigram(0); t < NumTrigrams; t++ {
		d := defaultTable.entries[t].Descriptor
		if lower == t.String() || s == d.Name || s == d.Symbol.String() {
			return t, true
		}
	}
	return 0, false
}

// Symbol is one glyph of the output alphabet.
type Symbol rune

// String returns the glyph.
func (s Symbol) String() string {
	return string(rune(s))
}

// Sequence is an ordered run of symbols produced by one encode call.
type Sequence []Symbol

// String joins the glyphs.
func (seq Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(seq) * 3)
	for _, s := range seq {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}

// Len returns the number of symbols.
func (seq Sequence) Len() int {
	return len(seq)
}

// ParseSequence splits s into symbols. Runes outside the alphabet are kept
// so that decoders can skip them.
func ParseSequence(s string) Sequence {
	if s == "" {
		return nil
	}
	seq := make(Sequence, 0, len(s)/3)
	for _, r := range s {
		seq = append(seq, Symbol(r))
	}
	return seq
}

// Polarity is the yin/yang grouping of a trigram.
type Polarity uint8

const (
	Yang Polarity = iota
	Yin
)

// String returns "yang" or "yin".
func (p Polarity) String() string {
	if p == Yin {
		return "yin"
	}
	return "yang"
}

// Descriptor is the static display metadata of one symbol.
type Descriptor struct {
	Trigram     Trigram
	Name        string // 乾
	Pinyin      string // Qian
	Symbol      Symbol
	Meaning     string
	Element     Element
	Nature      string
	Polarity    Polarity
	Family      string
	Description string
	Personality string
}

// Bits returns the BitGroup of the descriptor's trigram.
func (d Descriptor) Bits() string {
	return d.Trigram.Bits()
}
