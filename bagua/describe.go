package bagua

import (
	"fmt"
	"unicode/utf16"
)

// SummaryThreshold is the number of symbols a sequence must exceed before
// a dominant element is reported.
const SummaryThreshold = 3

// DescribeSequence returns one descriptor per known symbol of seq in order,
// using the default table.
func DescribeSequence(seq Sequence) []Descriptor { return std.DescribeSequence(seq) }

// Summarize aggregates seq with the default table.
func Summarize(seq Sequence) Summary { return std.Summarize(seq) }

// DescribeSequence returns one descriptor per symbol of seq, order
// preserved. Symbols outside the table have no descriptor and are skipped.
func (c *Codec) DescribeSequence(seq Sequence) []Descriptor {
	if len(seq) == 0 {
		return nil
	}
	out := make([]Descriptor, 0, len(seq))
	for _, s := range seq {
		if d, ok := c.table.DescriptorFor(s); ok {
			out = append(out, d)
		}
	}
	return out
}

// DominantElement returns the most frequent element among descs. It reports
// false for SummaryThreshold descriptors or fewer. Ties go to the element
// that comes first in descriptor-table order (Qian, Kun, Zhen, ...), which
// yields metal, earth, wood, water, fire.
func DominantElement(descs []Descriptor) (Element, bool) {
	if len(descs) <= SummaryThreshold {
		return 0, false
	}
	var counts [NumElements]int
	for _, d := range descs {
		if d.Element < NumElements {
			counts[d.Element]++
		}
	}
	best, top := Element(0), -1
	for _, e := range elementOrder() {
		if counts[e] > top {
			best, top = e, counts[e]
		}
	}
	return best, true
}

// elementOrder lists each element once, in the order it first appears in
// the default descriptor table.
func elementOrder() []Element {
	var seen [NumElements]bool
	out := make([]Element, 0, NumElements)
	for _, g := range displayOrder {
		e := defaultTable.entries[g].Descriptor.Element
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// Summary is the coarse aggregate shown under long sequences.
type Summary struct {
	Count       int
	Dominant    Element
	HasDominant bool
	Elements    [NumElements]int
	Yang, Yin   int
}

// Characteristic returns the trait of the dominant element, or the neutral
// phrase when there is none.
func (s Summary) Characteristic() string {
	if !s.HasDominant {
		return Element(NumElements).Characteristic()
	}
	return s.Dominant.Characteristic()
}

// Summarize counts the known symbols of seq by element and polarity and
// picks the dominant element.
func (c *Codec) Summarize(seq Sequence) Summary {
	descs := c.DescribeSequence(seq)
	s := Summary{Count: len(descs)}
	for _, d := range descs {
		if d.Element < NumElements {
			s.Elements[d.Element]++
		}
		if d.Polarity == Yin {
			s.Yin++
		} else {
			s.Yang++
		}
	}
	s.Dominant, s.HasDominant = DominantElement(descs)
	return s
}

// Stats describes the size of an encoding relative to its input.
type Stats struct {
	InputLen int     // input length in UTF-16 code units
	CodeLen  int     // number of symbols
	Ratio    float64 // CodeLen / InputLen, in percent
}

// ComputeStats measures seq against the input it was produced from.
func ComputeStats(input string, seq Sequence) Stats {
	st := Stats{
		InputLen: len(utf16.Encode([]rune(input))),
		CodeLen:  len(seq),
	}
	if st.InputLen > 0 {
		st.Ratio = float64(st.CodeLen) / float64(st.InputLen) * 100
	}
	return st
}

// RatioString formats the ratio with one decimal, e.g. "600.0%".
func (s Stats) RatioString() string {
	return fmt.Sprintf("%.1f%%", s.Ratio)
}
