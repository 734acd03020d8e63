package bagua

import (
	"errors"
	"testing"
)

func TestTable_Closure(t *testing.T) {
	seen := make(map[Symbol]bool)
	for g := Trigram(0); g < NumTrigrams; g++ {
		s := SymbolFor(g)
		if seen[s] {
			t.Fatalf("symbol %s mapped twice", s)
		}
		seen[s] = true

		back, ok := BitGroupFor(s)
		if !ok {
			t.Fatalf("BitGroupFor(%s) not found", s)
		}
		if back != g {
			t.Errorf("BitGroupFor(SymbolFor(%s)) = %s", g.Bits(), back.Bits())
		}
	}

	for s := range seen {
		g, _ := BitGroupFor(s)
		if SymbolFor(g) != s {
			t.Errorf("SymbolFor(BitGroupFor(%s)) = %s", s, SymbolFor(g))
		}
	}
}

func TestTable_KnownMapping(t *testing.T) {
	tests := []struct {
		bits   string
		symbol Symbol
		name   string
	}{
		{"000", '☷', "坤"},
		{"001", '☶', "艮"},
		{"010", '☵', "坎"},
		{"011", '☴', "巽"},
		{"100", '☳', "震"},
		{"101", '☲', "离"},
		{"110", '☱', "兑"},
		{"111", '☰', "乾"},
	}

	for _, tt := range tests {
		t.Run(tt.bits, func(t *testing.T) {
			g, ok := ParseBitGroup(tt.bits)
			if !ok {
				t.Fatalf("ParseBitGroup(%q) failed", tt.bits)
			}
			if g.Bits() != tt.bits {
				t.Errorf("Bits() = %q, expected %q", g.Bits(), tt.bits)
			}
			if got := SymbolFor(g); got != tt.symbol {
				t.Errorf("SymbolFor = %s, expected %s", got, tt.symbol)
			}
			d, ok := DescriptorFor(tt.symbol)
			if !ok {
				t.Fatalf("DescriptorFor(%s) not found", tt.symbol)
			}
			if d.Name != tt.name {
				t.Errorf("Name = %s, expected %s", d.Name, tt.name)
			}
			if d.Trigram != g || d.Symbol != tt.symbol {
				t.Errorf("descriptor back-references wrong: %v %s", d.Trigram, d.Symbol)
			}
		})
	}
}

func TestTable_ForeignSymbol(t *testing.T) {
	for _, r := range []rune{'A', '0', '☯', 0} {
		if _, ok := BitGroupFor(Symbol(r)); ok {
			t.Errorf("BitGroupFor(%q) should not resolve", r)
		}
		if _, ok := DescriptorFor(Symbol(r)); ok {
			t.Errorf("DescriptorFor(%q) should not resolve", r)
		}
	}
}

func TestNewTable_RejectsBrokenBijection(t *testing.T) {
	var entries [NumTrigrams]Entry
	for g := Trigram(0); g < NumTrigrams; g++ {
		entries[g] = Entry{Symbol: Symbol('a' + rune(g))}
	}
	if _, err := NewTable(entries); err != nil {
		t.Fatalf("NewTable on distinct symbols: %v", err)
	}

	dup := entries
	dup[Qian].Symbol = dup[Kun].Symbol
	if _, err := NewTable(dup); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("Expected ErrDuplicateSymbol, got %v", err)
	}

	zero := entries
	zero[Li].Symbol = 0
	if _, err := NewTable(zero); !errors.Is(err, ErrZeroSymbol) {
		t.Errorf("Expected ErrZeroSymbol, got %v", err)
	}
}

func TestNewTable_CustomAlphabet(t *testing.T) {
	var entries [NumTrigrams]Entry
	for g := Trigram(0); g < NumTrigrams; g++ {
		entries[g] = Entry{Symbol: Symbol('0' + rune(g))}
	}
	table, err := NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	c := NewCodec(table)

	// Octal digits make the bit layout easy to read.
	if got := c.EncodeBits("101110").String(); got != "56" {
		t.Errorf("EncodeBits = %q, expected %q", got, "56")
	}
	if got := c.DecodeToText(c.EncodeText("ok")); got != "ok" {
		t.Errorf("round-trip = %q", got)
	}
}

func TestParseBitGroup_Invalid(t *testing.T) {
	for _, s := range []string{"", "0", "01", "0101", "012", "ab1"} {
		if _, ok := ParseBitGroup(s); ok {
			t.Errorf("ParseBitGroup(%q) should fail", s)
		}
	}
}

func TestParseTrigram(t *testing.T) {
	tests := []struct {
		input string
		want  Trigram
	}{
		{"qian", Qian},
		{"Qian", Qian},
		{"乾", Qian},
		{"☰", Qian},
		{"111", Qian},
		{" kan ", Kan},
		{"☷", Kun},
		{"001", Gen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTrigram(tt.input)
			if !ok {
				t.Fatalf("ParseTrigram(%q) failed", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseTrigram(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}

	if _, ok := ParseTrigram("yin"); ok {
		t.Error("ParseTrigram(\"yin\") should fail")
	}
}

func TestDescriptors_DisplayOrder(t *testing.T) {
	descs := DefaultTable().Descriptors()
	if len(descs) != NumTrigrams {
		t.Fatalf("Expected %d descriptors, got %d", NumTrigrams, len(descs))
	}
	want := "乾坤震巽坎离艮兑"
	got := ""
	for _, d := range descs {
		got += d.Name
	}
	if got != want {
		t.Errorf("display order = %s, expected %s", got, want)
	}
}

func TestPolarity(t *testing.T) {
	yang := map[Trigram]bool{Qian: true, Dui: true, Li: true, Zhen: true}
	for g := Trigram(0); g < NumTrigrams; g++ {
		p := DefaultTable().Descriptor(g).Polarity
		if yang[g] && p != Yang {
			t.Errorf("%s should be yang", g)
		}
		if !yang[g] && p != Yin {
			t.Errorf("%s should be yin", g)
		}
	}
}
