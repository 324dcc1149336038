package render

import (
	"strconv"
	"strings"
	"unicode"
)

// maxMarkdownHeading is the deepest heading CommonMark understands.
const maxMarkdownHeading = 6

// HTML emits the fragment as markup. Text is written verbatim, unescaped.
func (f Fragment) HTML() string {
	var b strings.Builder
	for _, blk := range f.Blocks {
		switch blk.Kind {
		case BlockHeading:
			tag := "h" + strconv.Itoa(blk.Level)
			b.WriteString("<" + tag + ">")
			writeHTML(&b, blk.Inlines)
			b.WriteString("</" + tag + ">")
		default:
			b.WriteString("<p>")
			writeHTML(&b, blk.Inlines)
			b.WriteString("</p>")
		}
	}
	return b.String()
}

func writeHTML(b *strings.Builder, ins []Inline) {
	for _, in := range ins {
		switch in.Kind {
		case InlineText:
			b.WriteString(in.Text)
		case InlineBreak:
			b.WriteString("<br>")
		case InlineStrong:
			b.WriteString("<strong>")
			writeHTML(b, in.Children)
			b.WriteString("</strong>")
		case InlineEmphasis:
			b.WriteString("<em>")
			writeHTML(b, in.Children)
			b.WriteString("</em>")
		}
	}
}

// PlainText returns the visible text: blocks separated by a blank line,
// breaks as newlines, emphasis markers dropped.
func (f Fragment) PlainText() string {
	parts := make([]string, 0, len(f.Blocks))
	for _, blk := range f.Blocks {
		parts = append(parts, Text(blk.Inlines))
	}
	return strings.Join(parts, "\n\n")
}

// Markdown re-emits the fragment as CommonMark so a terminal renderer shows
// exactly the structure Format found. Literal markdown punctuation in text
// is backslash-escaped and headings deeper than six are clamped.
func (f Fragment) Markdown() string {
	parts := make([]string, 0, len(f.Blocks))
	for _, blk := range f.Blocks {
		var b strings.Builder
		switch blk.Kind {
		case BlockHeading:
			level := blk.Level
			if level > maxMarkdownHeading {
				level = maxMarkdownHeading
			}
			if level < 1 {
				level = 1
			}
			b.WriteString(strings.Repeat("#", level))
			if inner := markdownInline(blk.Inlines, false); inner != "" {
				b.WriteString(" " + inner)
			}
		default:
			b.WriteString(markdownInline(blk.Inlines, true))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func markdownInline(ins []Inline, lineStart bool) string {
	var b strings.Builder
	for _, in := range ins {
		switch in.Kind {
		case InlineText:
			text := in.Text
			if lineStart {
				text = strings.TrimLeftFunc(text, unicode.IsSpace)
			}
			b.WriteString(escapeMarkdown(text, lineStart))
		case InlineBreak:
			b.WriteString("\\\n")
			lineStart = true
			continue
		case InlineStrong:
			writeDelimited(&b, "**", markdownInline(in.Children, false))
		case InlineEmphasis:
			writeDelimited(&b, "*", markdownInline(in.Children, false))
		}
		lineStart = false
	}
	return b.String()
}

// writeDelimited wraps inner in delim, moving edge whitespace outside so the
// delimiters stay flanking. Empty spans are dropped.
func writeDelimited(b *strings.Builder, delim, inner string) {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		b.WriteString(inner)
		return
	}
	lead := inner[:len(inner)-len(strings.TrimLeftFunc(inner, unicode.IsSpace))]
	trail := inner[len(strings.TrimRightFunc(inner, unicode.IsSpace)):]
	b.WriteString(lead + delim + trimmed + delim + trail)
}

const markdownPunct = "\\`*_[]<>#|~"

// escapeMarkdown backslash-escapes punctuation and, at the start of a line,
// the characters that would open a list or a setext underline.
func escapeMarkdown(s string, lineStart bool) string {
	var b strings.Builder
	if lineStart {
		if n := leadingDigits(s); n > 0 && n < len(s) && (s[n] == '.' || s[n] == ')') {
			b.WriteString(s[:n] + "\\")
			s = s[n:]
			lineStart = false
		}
	}
	for i, r := range s {
		if strings.ContainsRune(markdownPunct, r) || (lineStart && i == 0 && strings.ContainsRune("-+=", r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func leadingDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return len(s)
}

// EscapeText escapes s so it shows literally when placed at the start of a
// Markdown line.
func EscapeText(s string) string {
	return escapeMarkdown(strings.TrimLeftFunc(s, unicode.IsSpace), true)
}
