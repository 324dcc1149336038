package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) Inline { return Inline{Kind: InlineText, Text: s} }

var br = Inline{Kind: InlineBreak}

func TestFormatHeadingParagraphEmphasis(t *testing.T) {
	f := Format("# Title\n\nBody **bold** and *italic*")
	require.Len(t, f.Blocks, 2)

	h := f.Blocks[0]
	assert.Equal(t, BlockHeading, h.Kind)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, []Inline{text("Title")}, h.Inlines)

	p := f.Blocks[1]
	assert.Equal(t, BlockParagraph, p.Kind)
	assert.Equal(t, []Inline{
		text("Body "),
		{Kind: InlineStrong, Children: []Inline{text("bold")}},
		text(" and "),
		{Kind: InlineEmphasis, Children: []Inline{text("italic")}},
	}, p.Inlines)

	assert.Equal(t, "<h1>Title</h1><p>Body <strong>bold</strong> and <em>italic</em></p>", f.HTML())
}

func TestFormatSingleNewlineIsLineBreak(t *testing.T) {
	f := Format("A\nB")
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, []Inline{text("A"), br, text("B")}, f.Blocks[0].Inlines)
	assert.Equal(t, "<p>A<br>B</p>", f.HTML())
}

func TestFormatPlainProseIsOneParagraph(t *testing.T) {
	prose := "Tea was first cultivated in China, then spread along trade routes."
	f := Format(prose)
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, BlockParagraph, f.Blocks[0].Kind)
	assert.Equal(t, []Inline{text(prose)}, f.Blocks[0].Inlines)
	assert.Equal(t, "<p>"+prose+"</p>", f.HTML())

	// formatting the visible text again changes nothing
	assert.Equal(t, f, Format(f.PlainText()))
}

func TestFormatParagraphBoundaries(t *testing.T) {
	cases := map[string]int{
		"a\n\nb":          2,
		"a\n\n\n\nb":      2,
		"a\n  \t\n b":     2,
		"a\r\n\r\nb":      2,
		"a\nb\nc":         1,
		"\n\na\n\n":       1,
		"":                0,
		"   ":             0,
		"a\n\nb\n\nc\n\n": 3,
		"a\n\u00a0\nb":    2,
		"a\n\v\nb":        2,
		"a\n\u3000 \nb":   2,
		"a\n\ufeff\nb":    2,
		"a\n\u2028\nb":    2,
	}
	for in, want := range cases {
		assert.Len(t, Format(in).Blocks, want, "input %q", in)
	}
}

func TestFormatUnicodeBlankLineSplitsParagraphs(t *testing.T) {
	assert.Equal(t, "<p>A</p><p>B</p>", Format("A\n\u00a0\nB").HTML())
	assert.Equal(t, "<p>A</p><p>B</p>", Format("A\n\v\nB").HTML())
	// a no-break space inside a line is still text
	assert.Equal(t, "<p>A\u00a0B</p>", Format("A\u00a0B").HTML())
}

func TestFormatHeadingLevels(t *testing.T) {
	for level := 1; level <= 7; level++ {
		hashes := ""
		for i := 0; i < level; i++ {
			hashes += "#"
		}
		f := Format(hashes + "   Spaced heading  ")
		require.Len(t, f.Blocks, 1)
		assert.Equal(t, BlockHeading, f.Blocks[0].Kind)
		assert.Equal(t, level, f.Blocks[0].Level)
		assert.Equal(t, "Spaced heading", Text(f.Blocks[0].Inlines))
	}
	assert.Equal(t, "<h7>x</h7>", Format("#######x").HTML())
}

func TestFormatHeadingInsideParagraph(t *testing.T) {
	f := Format("intro\n## Part\nbody")
	require.Len(t, f.Blocks, 3)
	assert.Equal(t, BlockParagraph, f.Blocks[0].Kind)
	assert.Equal(t, BlockHeading, f.Blocks[1].Kind)
	assert.Equal(t, 2, f.Blocks[1].Level)
	assert.Equal(t, BlockParagraph, f.Blocks[2].Kind)
	assert.Equal(t, "<p>intro</p><h2>Part</h2><p>body</p>", f.HTML())
}

func TestFormatLiteralMarkersHaveNoEscape(t *testing.T) {
	// a hashtag at line start still becomes a heading
	f := Format("#golang rocks")
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, BlockHeading, f.Blocks[0].Kind)
	assert.Equal(t, "golang rocks", Text(f.Blocks[0].Inlines))

	// an indented hash is not a heading
	assert.Equal(t, BlockParagraph, Format("  # not a heading").Blocks[0].Kind)

	// a lone asterisk survives
	assert.Equal(t, "<p>2 * 3 = 6</p>", Format("2 * 3 = 6").HTML())
	assert.Equal(t, "<p>a <em> b </em> c</p>", Format("a * b * c").HTML())
}

func TestFormatEmphasisEdgeCases(t *testing.T) {
	cases := map[string]string{
		"**a** and **b**":   "<p><strong>a</strong> and <strong>b</strong></p>",
		"**a *b* c**":       "<p><strong>a <em>b</em> c</strong></p>",
		"*a **b** c*":       "<p><em>a <strong>b</strong> c</em></p>",
		"****":              "<p><strong></strong></p>",
		"**a":               "<p><em></em>a</p>",
		"**a\nb**":          "<p><strong>a<br>b</strong></p>",
		"# **Bold** heading": "<h1><strong>Bold</strong> heading</h1>",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(in).HTML(), "input %q", in)
	}
}

func TestFormatOverlappingSpansStayNested(t *testing.T) {
	f := Format("*a **b* c**")
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, []Inline{
		{Kind: InlineEmphasis, Children: []Inline{
			text("a "),
			{Kind: InlineStrong, Children: []Inline{text("b")}},
		}},
		{Kind: InlineStrong, Children: []Inline{text(" c")}},
	}, f.Blocks[0].Inlines)
}

func TestFormatStripsMarkerRunes(t *testing.T) {
	assert.Equal(t, "<p>ab</p>", Format("a\uE000b").HTML())
}

func TestFormatSpansDoNotCrossParagraphs(t *testing.T) {
	f := Format("**open\n\nclose**")
	assert.Equal(t, "<p><em></em>open</p><p>close<em></em></p>", f.HTML())
}

func TestFormatIsDeterministic(t *testing.T) {
	in := "# A\n\n*x* **y**\nz\n\n### B"
	assert.Equal(t, Format(in), Format(in))
	assert.Equal(t, Format(in).HTML(), Format(in).HTML())
}

func TestBlockKindString(t *testing.T) {
	assert.Equal(t, "heading", BlockHeading.String())
	assert.Equal(t, "paragraph", BlockParagraph.String())
	assert.Equal(t, "strong", InlineStrong.String())
	assert.Equal(t, "unknown", InlineKind(42).String())
}
