package bagua

import (
	"errors"
	"fmt"
)

var (
	ErrZeroSymbol      = errors.New("bagua: table entry has no symbol")
	ErrDuplicateSymbol = errors.New("bagua: symbol mapped twice")
)

// Entry is one row of a Table. The row's index is its Trigram.
type Entry struct {
	Symbol     Symbol
	Descriptor Descriptor
}

// Table is the bijection between the eight bit groups and their symbols.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	entries [NumTrigrams]Entry
	index   map[Symbol]Trigram
}

// NewTable builds a Table from eight entries indexed by Trigram. It fails if
// any symbol is zero or appears twice, since the reverse lookup would not be
// total.
func NewTable(entries [NumTrigrams]Entry) (*Table, error) {
	t := &Table{
		entries: entries,
		index:   make(map[Symbol]Trigram, NumTrigrams),
	}
	for i := range t.entries {
		tg := Trigram(i)
		e := &t.entries[i]
		if e.Symbol == 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroSymbol, tg.Bits())
		}
		if prev, dup := t.index[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: %q for %s and %s", ErrDuplicateSymbol, e.Symbol, prev.Bits(), tg.Bits())
		}
		t.index[e.Symbol] = tg
		e.Descriptor.Trigram = tg
		e.Descriptor.Symbol = e.Symbol
	}
	return t, nil
}

// SymbolFor returns the symbol written for a bit group.
func (t *Table) SymbolFor(g Trigram) Symbol {
	return t.entries[g&7].Symbol
}

// BitGroupFor returns the bit group of s. ok is false for runes outside
// the alphabet.
func (t *Table) BitGroupFor(s Symbol) (g Trigram, ok bool) {
	g, ok = t.index[s]
	return g, ok
}

// DescriptorFor returns the static descriptor of s.
func (t *Table) DescriptorFor(s Symbol) (Descriptor, bool) {
	g, ok := t.index[s]
	if !ok {
		return Descriptor{}, false
	}
	return t.entries[g].Descriptor, true
}

// Descriptor returns the descriptor of a trigram.
func (t *Table) Descriptor(g Trigram) Descriptor {
	return t.entries[g&7].Descriptor
}

// Descriptors returns all eight descriptors in display order (Qian first).
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, NumTrigrams)
	for _, g := range displayOrder {
		out = append(out, t.entries[g].Descriptor)
	}
	return out
}

// Contains reports whether s belongs to the alphabet.
func (t *Table) Contains(s Symbol) bool {
	_, ok := t.index[s]
	return ok
}

// displayOrder is the order the descriptor table is listed and iterated in:
// father, mother, then the sons and daughters from eldest to youngest.
var displayOrder = [NumTrigrams]Trigram{Qian, Kun, Zhen, Xun, Kan, Li, Gen, Dui}

var defaultTable = mustTable(NewTable([NumTrigrams]Entry{
	Kun: {Symbol: '☷', Descriptor: Descriptor{
		Name:        "坤",
		Pinyin:      "Kun",
		Meaning:     "地、柔顺、包容",
		Element:     Earth,
		Nature:      "地",
		Polarity:    Yin,
		Family:      "母亲",
		Description: "代表地，象征柔顺、包容、承载的力量。在自然界中代表大地，在人事上代表母亲、臣民。",
		Personality: "柔顺、包容、稳重、有耐心",
	}},
	Gen: {Symbol: '☶', Descriptor: Descriptor{
		Name:        "艮",
		Pinyin:      "Gen",
		Meaning:     "山、静止、阻止",
		Element:     Earth,
		Nature:      "山",
		Polarity:    Yin,
		Family:      "少男",
		Description: "代表山，象征静止、阻止、稳定的力量。在自然界中代表山，在人事上代表少男。",
		Personality: "稳重、固执、有定力、不易改变",
	}},
	Kan: {Symbol: '☵', Descriptor: Descriptor{
		Name:        "坎",
		Pinyin:      "Kan",
		Meaning:     "水、险陷、智慧",
		Element:     Water,
		Nature:      "水",
		Polarity:    Yin,
		Family:      "中男",
		Description: "代表水，象征险陷、智慧、流动的力量。在自然界中代表水，在人事上代表中男。",
		Personality: "智慧、灵活、深沉、有洞察力",
	}},
	Xun: {Symbol: '☴', Descriptor: Descriptor{
		Name:        "巽",
		Pinyin:      "Xun",
		Meaning:     "风、顺从、渗透",
		Element:     Wood,
		Nature:      "风",
		Polarity:    Yin,
		Family:      "长女",
		Description: "代表风，象征顺从、渗透、温和的力量。在自然界中代表风，在人事上代表长女。",
		Personality: "温和、顺从、有渗透力、善于沟通",
	}},
	Zhen: {Symbol: '☳', Descriptor: Descriptor{
		Name:        "震",
		Pinyin:      "Zhen",
		Meaning:     "雷、震动、奋起",
		Element:     Wood,
		Nature:      "雷",
		Polarity:    Yang,
		Family:      "长男",
		Description: "代表雷，象征震动、奋起、觉醒的力量。在自然界中代表雷电，在人事上代表长男。",
		Personality: "活跃、积极、有冲劲、容易激动",
	}},
	Li: {Symbol: '☲', Descriptor: Descriptor{
		Name:        "离",
		Pinyin:      "Li",
		Meaning:     "火、光明、依附",
		Element:     Fire,
		Nature:      "火",
		Polarity:    Yang,
		Family:      "中女",
		Description: "代表火，象征光明、依附、温暖的力量。在自然界中代表火，在人事上代表中女。",
		Personality: "热情、光明、有魅力、善于表达",
	}},
	Dui: {Symbol: '☱', Descriptor: Descriptor{
		Name:        "兑",
		Pinyin:      "Dui",
		Meaning:     "泽、喜悦、沟通",
		Element:     Metal,
		Nature:      "泽",
		Polarity:    Yang,
		Family:      "少女",
		Description: "代表泽，象征喜悦、沟通、润泽的力量。在自然界中代表沼泽，在人事上代表少女。",
		Personality: "喜悦、温和、善于沟通、有感染力",
	}},
	Qian: {Symbol: '☰', Descriptor: Descriptor{
		Name:        "乾",
		Pinyin:      "Qian",
		Meaning:     "天、刚健、创造",
		Element:     Metal,
		Nature:      "天",
		Polarity:    Yang,
		Family:      "父亲",
		Description: "代表天，象征刚健、创造、进取的力量。在自然界中代表天，在人事上代表君主、父亲。",
		Personality: "刚健、积极、进取、有创造力",
	}},
}))

func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTable returns the process-wide trigram table.
func DefaultTable() *Table {
	return defaultTable
}

// SymbolFor returns the symbol of g in the default table.
func SymbolFor(g Trigram) Symbol {
	return defaultTable.SymbolFor(g)
}

// BitGroupFor returns the bit group of s in the default table.
func BitGroupFor(s Symbol) (Trigram, bool) {
	return defaultTable.BitGroupFor(s)
}

// DescriptorFor returns the descriptor of s in the default table.
func DescriptorFor(s Symbol) (Descriptor, bool) {
	return defaultTable.DescriptorFor(s)
}
