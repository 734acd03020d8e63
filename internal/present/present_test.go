package present

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/bagua/bagua"
	"github.com/Neumenon/bagua/internal/i18n"
)

func zhRenderer() *TextRenderer {
	return NewTextRenderer(i18n.Default().Localizer("zh-CN"), false)
}

func TestEncode_Report(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeText, "A", 3)
	require.NoError(t, err)

	assert.Equal(t, "☷☷☷☳☷☳", r.Sequence.String())
	assert.Equal(t, "000000000100000100", r.Bits)
	assert.Len(t, r.Details, 3)
	assert.Equal(t, 6, r.Stats.CodeLen)
	assert.True(t, r.Summary.HasDominant)
	assert.Equal(t, bagua.Earth, r.Summary.Dominant)
}

func TestEncode_InvalidNumber(t *testing.T) {
	_, err := Encode(bagua.NewCodec(nil), bagua.ModeNumber, "-3", 3)
	assert.True(t, errors.Is(err, bagua.ErrInvalidNumber))
}

func TestTextRenderer_Encode(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeText, "A", 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, zhRenderer().Render(&buf, r))

	want := strings.Join([]string{
		"☷☷☷☳☷☳",
		"编码长度: 6 | 压缩比: 600.0%",
		"",
		"☷ 坤 (Kun)",
		"  含义: 地、柔顺、包容",
		"  五行: 土 | 自然: 地",
		"  描述: 代表地，象征柔顺、包容、承载的力量。在自然界中代表大地，在人事上代表母亲、臣民。",
		"  性格: 柔顺、包容、稳重、有耐心",
		"",
		"整体分析",
		"  此序列包含 6 个八卦符号，主要五行属性为土，体现了稳重、包容、有承载力的特质。",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_ShortSequenceHasNoSummary(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeNumber, "5", 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(i18n.Default().Localizer("en-US"), false).Render(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "☲ 离 (Li)")
	assert.Contains(t, out, "Element: Fire | Nature: 火")
	assert.NotContains(t, out, "Overall analysis")
}

func TestTextRenderer_Empty(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeBinary, "xyz", 3)
	require.NoError(t, err)
	require.True(t, r.Empty())

	var buf bytes.Buffer
	require.NoError(t, zhRenderer().Render(&buf, r))
	assert.Equal(t, "请输入内容开始转换\n转换结果将显示对应的哲学含义\n", buf.String())
}

func TestTextRenderer_Decode(t *testing.T) {
	r := Decode(bagua.NewCodec(nil), "☷☷☷☳☷☳", 0)
	assert.Equal(t, "A", r.Decoded)

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(i18n.Default().Localizer("en"), false).Render(&buf, r))
	assert.True(t, strings.HasPrefix(buf.String(), "Decoded: A\nBits: 000000000100000100\n"), buf.String())
}

func TestTextRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, zhRenderer().RenderTable(&buf, bagua.DefaultTable().Descriptors()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "二进制 | 八卦 | 五行 | 自然 | 阴阳 | 家庭", lines[0])
	assert.Equal(t, "111 ☰ 乾 Qian 金 | 天 | 阳 | 父亲", lines[1])
	assert.Equal(t, "000 ☷ 坤 Kun  土 | 地 | 阴 | 母亲", lines[2])
}

func TestTextRenderer_TableHeaderEnglish(t *testing.T) {
	var buf bytes.Buffer
	loc := i18n.Default().Localizer("en-US")
	require.NoError(t, NewTextRenderer(loc, false).RenderTable(&buf, nil))
	assert.Equal(t, "Bits | Trigrams | Element | Nature | Polarity | Family\n", buf.String())
}

func TestTextRenderer_DescriptionAndPersonality(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeNumber, "7", 3)
	require.NoError(t, err)
	require.Equal(t, "☰", r.Sequence.String())

	qian := bagua.DefaultTable().Descriptor(bagua.Qian)
	require.NotEmpty(t, qian.Description)
	require.NotEmpty(t, qian.Personality)

	var zh bytes.Buffer
	require.NoError(t, zhRenderer().Render(&zh, r))
	assert.Contains(t, zh.String(), "  描述: "+qian.Description+"\n")
	assert.Contains(t, zh.String(), "  性格: "+qian.Personality+"\n")

	var en bytes.Buffer
	require.NoError(t, NewTextRenderer(i18n.Default().Localizer("en-US"), false).Render(&en, r))
	assert.Contains(t, en.String(), "  Description: "+qian.Description+"\n")
	assert.Contains(t, en.String(), "  Personality: "+qian.Personality+"\n")
}

func TestTextRenderer_Relations(t *testing.T) {
	var buf bytes.Buffer
	rels := bagua.RelationsOf(bagua.Kan)
	require.NoError(t, zhRenderer().RenderRelations(&buf, bagua.DefaultTable(), rels))
	assert.True(t, strings.HasPrefix(buf.String(), "关系 (11)\n"), buf.String())
	assert.Contains(t, buf.String(), "☵ 坎 -> ☲ 离  相克\n")
	assert.Contains(t, buf.String(), "☵ 坎 -> ☳ 震  相生\n")
}

func TestJSONRenderer(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeText, "Hi", 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, r))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Hi", got.Input)
	assert.Equal(t, "text", got.Mode)
	assert.Equal(t, "☷☷☷☳☳☷☷☷☴☵☵", got.Symbols)
	assert.Equal(t, 11, got.Length)
	assert.Equal(t, "550.0%", got.Ratio)
	assert.Nil(t, got.Decoded)
	require.Len(t, got.Trigrams, 2)
	assert.Equal(t, "000", got.Trigrams[0].Bits)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 11, got.Summary.Count)
	assert.Equal(t, "earth", got.Summary.Dominant)
	assert.Equal(t, bagua.Earth.Characteristic(), got.Summary.Characteristic)
}

func TestJSONRenderer_DescriptionAndPersonality(t *testing.T) {
	r, err := Encode(bagua.NewCodec(nil), bagua.ModeNumber, "7", 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, r))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Trigrams, 1)
	qian := bagua.DefaultTable().Descriptor(bagua.Qian)
	assert.Equal(t, qian.Description, got.Trigrams[0].Description)
	assert.Equal(t, qian.Personality, got.Trigrams[0].Personality)

	buf.Reset()
	require.NoError(t, JSONRenderer{}.RenderTable(&buf, bagua.DefaultTable().Descriptors()))
	var rows []jsonDescriptor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, qian.Description, rows[0].Description)
	assert.Equal(t, qian.Personality, rows[0].Personality)
}

func TestJSONRenderer_LocalizedCharacteristic(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		input  string
		want   string
	}{
		{"earth en", "en-US", "Hi", "steady, tolerant and supportive"},
		{"earth zh", "zh-CN", "Hi", "稳重、包容、有承载力"},
		{"no dominant en", "en-US", "7", "balanced and harmonious"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := bagua.ModeText
			if tt.input == "7" {
				m = bagua.ModeNumber
			}
			r, err := Encode(bagua.NewCodec(nil), m, tt.input, 0)
			require.NoError(t, err)

			var buf bytes.Buffer
			loc := i18n.Default().Localizer(tt.locale)
			require.NoError(t, JSONRenderer{Loc: loc}.Render(&buf, r))

			var got jsonReport
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			require.NotNil(t, got.Summary)
			assert.Equal(t, tt.want, got.Summary.Characteristic)
		})
	}
}

func TestJSONRenderer_Decode(t *testing.T) {
	r := Decode(bagua.NewCodec(nil), "☲", 3)

	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, r))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotNil(t, got.Decoded)
	assert.Equal(t, "", *got.Decoded)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 1, got.Summary.Count)
	assert.Empty(t, got.Summary.Dominant)
	assert.Equal(t, 1, got.Summary.Elements["fire"])
}
