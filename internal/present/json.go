package present

import (
	"encoding/json"
	"io"

	"github.com/Neumenon/bagua/bagua"
	"github.com/Neumenon/bagua/internal/i18n"
)

type jsonDescriptor struct {
	Symbol      string `json:"symbol"`
	Bits        string `json:"bits"`
	Name        string `json:"name"`
	Pinyin      string `json:"pinyin"`
	Meaning     string `json:"meaning"`
	Element     string `json:"element"`
	Nature      string `json:"nature"`
	Polarity    string `json:"polarity"`
	Family      string `json:"family"`
	Description string `json:"description"`
	Personality string `json:"personality"`
}

type jsonSummary struct {
	Count          int            `json:"count"`
	Dominant       string         `json:"dominant,omitempty"`
	Characteristic string         `json:"characteristic"`
	Elements       map[string]int `json:"elements"`
	Yang           int            `json:"yang"`
	Yin            int            `json:"yin"`
}

type jsonReport struct {
	Input    string           `json:"input"`
	Mode     string           `json:"mode,omitempty"`
	Symbols  string           `json:"symbols"`
	Bits     string           `json:"bits"`
	Decoded  *string          `json:"decoded,omitempty"`
	Length   int              `json:"length"`
	Ratio    string           `json:"ratio"`
	Trigrams []jsonDescriptor `json:"trigrams"`
	Summary  *jsonSummary     `json:"summary,omitempty"`
}

type jsonRelation struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

func toJSONDescriptor(d bagua.Descriptor) jsonDescriptor {
	return jsonDescriptor{
		Symbol:      d.Symbol.String(),
		Bits:        d.Bits(),
		Name:        d.Name,
		Pinyin:      d.Pinyin,
		Meaning:     d.Meaning,
		Element:     d.Element.String(),
		Nature:      d.Nature,
		Polarity:    d.Polarity.String(),
		Family:      d.Family,
		Description: d.Description,
		Personality: d.Personality,
	}
}

// JSONRenderer writes reports as indented JSON. Keys and descriptor fields
// are fixed; Loc, when set, localizes the summary characteristic.
type JSONRenderer struct {
	Loc *i18n.Localizer
}

func (j JSONRenderer) characteristic(s bagua.Summary) string {
	if j.Loc == nil {
		return s.Characteristic()
	}
	if !s.HasDominant {
		return j.Loc.T("trait.none")
	}
	return j.Loc.T("trait." + s.Dominant.String())
}

func (JSONRenderer) write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Render writes r.
func (j JSONRenderer) Render(w io.Writer, r *Report) error {
	out := jsonReport{
		Input:    r.Input,
		Symbols:  r.Sequence.String(),
		Bits:     r.Bits,
		Length:   r.Stats.CodeLen,
		Ratio:    r.Stats.RatioString(),
		Trigrams: make([]jsonDescriptor, 0, len(r.Details)),
	}
	if r.Decode {
		decoded := r.Decoded
		out.Decoded = &decoded
	} else {
		out.Mode = r.Mode.String()
	}
	for _, d := range r.Details {
		out.Trigrams = append(out.Trigrams, toJSONDescriptor(d))
	}
	if r.Summary.Count > 0 {
		s := &jsonSummary{
			Count:          r.Summary.Count,
			Characteristic: j.characteristic(r.Summary),
			Elements:       make(map[string]int, bagua.NumElements),
			Yang:           r.Summary.Yang,
			Yin:            r.Summary.Yin,
		}
		if r.Summary.HasDominant {
			s.Dominant = r.Summary.Dominant.String()
		}
		for e := bagua.Element(0); e < bagua.NumElements; e++ {
			s.Elements[e.String()] = r.Summary.Elements[e]
		}
		out.Summary = s
	}
	return j.write(w, out)
}

// RenderTable writes all descriptors.
func (j JSONRenderer) RenderTable(w io.Writer, descs []bagua.Descriptor) error {
	out := make([]jsonDescriptor, 0, len(descs))
	for _, d := range descs {
		out = append(out, toJSONDescriptor(d))
	}
	return j.write(w, out)
}

// RenderRelations writes the edges with pinyin names.
func (j JSONRenderer) RenderRelations(w io.Writer, _ *bagua.Table, rels []bagua.Relation) error {
	out := make([]jsonRelation, 0, len(rels))
	for _, r := range rels {
		out = append(out, jsonRelation{
			Source: r.Source.String(),
			Target: r.Target.String(),
			Kind:   r.Kind.String(),
		})
	}
	return j.write(w, out)
}

// Renderer is implemented by TextRenderer and JSONRenderer.
type Renderer interface {
	Render(w io.Writer, r *Report) error
	RenderTable(w io.Writer, descs []bagua.Descriptor) error
	RenderRelations(w io.Writer, table *bagua.Table, rels []bagua.Relation) error
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = JSONRenderer{}
)
