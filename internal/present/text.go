package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Neumenon/bagua/bagua"
	"github.com/Neumenon/bagua/internal/i18n"
)

const gold = "#d4af37"

// TextRenderer writes reports for a terminal.
type TextRenderer struct {
	loc   *i18n.Localizer
	color bool

	accent lipgloss.Style
	muted  lipgloss.Style
}

// NewTextRenderer returns a renderer labelled in loc's locale. With color
// off, output carries no escape sequences.
func NewTextRenderer(loc *i18n.Localizer, color bool) *TextRenderer {
	return &TextRenderer{
		loc:    loc,
		color:  color,
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color(gold)).Bold(true),
		muted:  lipgloss.NewStyle().Faint(true),
	}
}

func (t *TextRenderer) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}

func (t *TextRenderer) elementStyle(e bagua.Element, text string) string {
	if !t.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color())).Render(text)
}

// Element returns the localized element name.
func (t *TextRenderer) Element(e bagua.Element) string {
	return t.loc.T("element." + e.String())
}

// Render writes r.
func (t *TextRenderer) Render(w io.Writer, r *Report) error {
	var sb strings.Builder

	if r.Empty() {
		sb.WriteString(t.style(t.muted, t.loc.T("placeholder.input")))
		sb.WriteString("\n")
		sb.WriteString(t.style(t.muted, t.loc.T("placeholder.meaning")))
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	if r.Decode {
		fmt.Fprintf(&sb, "%s: %s\n", t.loc.T("label.decoded"), r.Decoded)
		fmt.Fprintf(&sb, "%s: %s\n", t.loc.T("label.bits"), r.Bits)
	} else {
		sb.WriteString(t.style(t.accent, r.Sequence.String()))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s: %d | %s: %s\n",
		t.loc.T("label.length"), r.Stats.CodeLen,
		t.loc.T("label.ratio"), r.Stats.RatioString())

	for _, d := range r.Details {
		sb.WriteString("\n")
		t.writeDescriptor(&sb, d)
	}

	if r.Summary.HasDominant {
		sb.WriteString("\n")
		sb.WriteString(t.style(t.accent, t.loc.T("label.summary")))
		sb.WriteString("\n  ")
		sb.WriteString(t.loc.T("summary.body",
			r.Summary.Count,
			t.elementStyle(r.Summary.Dominant, t.Element(r.Summary.Dominant)),
			t.loc.T("trait."+r.Summary.Dominant.String())))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *TextRenderer) writeDescriptor(sb *strings.Builder, d bagua.Descriptor) {
	fmt.Fprintf(sb, "%s %s (%s)\n", t.style(t.accent, d.Symbol.String()), t.style(t.accent, d.Name), d.Pinyin)
	fmt.Fprintf(sb, "  %s: %s\n", t.loc.T("label.meaning"), d.Meaning)
	fmt.Fprintf(sb, "  %s: %s | %s: %s\n",
		t.loc.T("label.element"), t.elementStyle(d.Element, t.Element(d.Element)),
		t.loc.T("label.nature"), d.Nature)
	fmt.Fprintf(sb, "  %s: %s\n", t.loc.T("label.description"), d.Description)
	fmt.Fprintf(sb, "  %s: %s\n", t.loc.T("label.personality"), d.Personality)
}

// RenderTable writes a header line and one row per descriptor.
func (t *TextRenderer) RenderTable(w io.Writer, descs []bagua.Descriptor) error {
	var sb strings.Builder
	sb.WriteString(t.style(t.muted, fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		t.loc.T("label.bits"), t.loc.T("label.symbols"),
		t.loc.T("label.element"), t.loc.T("label.nature"),
		t.loc.T("label.polarity"), t.loc.T("label.family"))))
	sb.WriteString("\n")
	for _, d := range descs {
		fmt.Fprintf(&sb, "%s %s %s %-4s %s | %s | %s | %s\n",
			d.Bits(),
			t.style(t.accent, d.Symbol.String()),
			d.Name,
			d.Pinyin,
			t.elementStyle(d.Element, t.Element(d.Element)),
			d.Nature,
			t.loc.T("polarity."+d.Polarity.String()),
			d.Family)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderRelations writes a header and one edge per line.
func (t *TextRenderer) RenderRelations(w io.Writer, table *bagua.Table, rels []bagua.Relation) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d)\n", t.style(t.accent, t.loc.T("label.relations")), len(rels))
	for _, r := range rels {
		src, dst := table.Descriptor(r.Source), table.Descriptor(r.Target)
		fmt.Fprintf(&sb, "%s %s -> %s %s  %s\n",
			src.Symbol, src.Name, dst.Symbol, dst.Name,
			t.loc.T("relation."+r.Kind.String()))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
