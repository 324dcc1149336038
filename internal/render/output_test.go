package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownRoundsTripStructure(t *testing.T) {
	f := Format("# Title\n\nBody **bold** and *italic*")
	assert.Equal(t, "# Title\n\nBody **bold** and *italic*\n", f.Markdown())
}

func TestMarkdownBreaksAndEscapes(t *testing.T) {
	cases := map[string]string{
		"A\nB":         "A\\\nB\n",
		"2 * 3":        "2 \\* 3\n",
		"#######x":     "###### x\n",
		"1. item":      "1\\. item\n",
		"- dash":       "\\- dash\n",
		"a\n+ b":       "a\\\n\\+ b\n",
		"** a **":      " **a** \n",
		"****":         "\n",
		"#":            "#\n",
		"use `go vet`": "use \\`go vet\\`\n",
		"    indented":  "indented\n",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(in).Markdown(), "input %q", in)
	}
}

func TestMarkdownHeadingDoesNotEscapeListMarkers(t *testing.T) {
	assert.Equal(t, "## - not a list\n", Format("## - not a list").Markdown())
}

func TestPlainText(t *testing.T) {
	f := Format("# T\n\nA\nB **c** *d*")
	assert.Equal(t, "T\n\nA\nB c d", f.PlainText())
	assert.Equal(t, "", Format("").PlainText())
}

func TestEmptyFragment(t *testing.T) {
	f := Format("\n\n")
	assert.True(t, f.Empty())
	assert.Equal(t, "", f.HTML())
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "HTTP error! Status: 500", EscapeText("HTTP error! Status: 500"))
	assert.Equal(t, "\\# not \\*a\\* heading", EscapeText("# not *a* heading"))
}
