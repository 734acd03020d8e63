// Package present turns codec results into terminal text or JSON.
package present

import (
	"github.com/Neumenon/bagua/bagua"
)

// Report is everything shown for one conversion.
type Report struct {
	Input    string
	Mode     bagua.Mode
	Sequence bagua.Sequence
	Bits     string
	Decoded  string
	Decode   bool // Report came from a decode call
	Details  []bagua.Descriptor
	Summary  bagua.Summary
	Stats    bagua.Stats
}

// Empty reports whether there is nothing to show.
func (r *Report) Empty() bool {
	return len(r.Sequence) == 0
}

// Encode runs input through codec in mode m. At most detailLimit
// descriptors are kept for detailed display.
func Encode(codec *bagua.Codec, m bagua.Mode, input string, detailLimit int) (*Report, error) {
	seq, err := codec.Encode(m, input)
	if err != nil {
		return nil, err
	}
	return build(codec, input, m, seq, detailLimit), nil
}

// Decode parses glyphs and decodes them back to text.
func Decode(codec *bagua.Codec, glyphs string, detailLimit int) *Report {
	seq := bagua.ParseSequence(glyphs)
	r := build(codec, glyphs, bagua.ModeText, seq, detailLimit)
	r.Decode = true
	r.Decoded = codec.DecodeToText(seq)
	return r
}

func build(codec *bagua.Codec, input string, m bagua.Mode, seq bagua.Sequence, detailLimit int) *Report {
	descs := codec.DescribeSequence(seq)
	if detailLimit >= 0 && len(descs) > detailLimit {
		descs = descs[:detailLimit]
	}
	return &Report{
		Input:    input,
		Mode:     m,
		Sequence: seq,
		Bits:     codec.SymbolsToBits(seq),
		Details:  descs,
		Summary:  codec.Summarize(seq),
		Stats:    bagua.ComputeStats(input, seq),
	}
}
