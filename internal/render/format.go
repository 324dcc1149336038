package render

import (
	"regexp"
	"strings"
)

var (
	// \s in RE2 is ASCII only; a blank line may also hold \v, Unicode space
	// separators, line/paragraph separators or a BOM.
	paragraphBreak = regexp.MustCompile(`\n[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]*\n`)
	headingLine    = regexp.MustCompile(`^(#+)\s*(.*)$`)
	strongSpan     = regexp.MustCompile(`(?s)\*\*(.*?)\*\*`)
	emphasisSpan   = regexp.MustCompile(`(?s)\*(.*?)\*`)
)

// Format converts raw response text into a Fragment.
//
// Paragraph and line-break splitting happen first, so heading detection sees
// individual lines. Strong spans are matched before emphasis; emphasis is
// then matched over the result, strong spans included. Spans may cross line
// breaks within a paragraph but never a paragraph boundary.
func Format(raw string) Fragment {
	raw = markerStripper.Replace(strings.ReplaceAll(raw, "\r\n", "\n"))
	f := Fragment{Blocks: []Block{}}
	for _, para := range paragraphBreak.Split(raw, -1) {
		f.Blocks = append(f.Blocks, splitParagraph(para)...)
	}
	return f
}

// splitParagraph turns one paragraph into blocks. Heading lines break the
// paragraph; the lines around them stay paragraphs of their own.
func splitParagraph(text string) []Block {
	var (
		out     []Block
		pending []string
	)
	flush := func() {
		lines := trimBlankEdges(pending)
		pending = nil
		if len(lines) == 0 {
			return
		}
		out = append(out, Block{
			Kind:    BlockParagraph,
			Inlines: parseInline(strings.Join(lines, "\n")),
		})
	}
	for _, line := range strings.Split(text, "\n") {
		if m := headingLine.FindStringSubmatch(line); m != nil {
			flush()
			out = append(out, Block{
				Kind:    BlockHeading,
				Level:   len(m[1]),
				Inlines: parseInline(strings.TrimSpace(m[2])),
			})
			continue
		}
		pending = append(pending, line)
	}
	flush()
	return out
}

func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// Span markers stand in for the tags the substitution rules insert. They are
// private-use runes, stripped from the input first.
const (
	strongOpen  = '\uE000'
	strongClose = '\uE001'
	emOpen      = '\uE002'
	emClose     = '\uE003'
)

var markerStripper = strings.NewReplacer(
	string(strongOpen), "", string(strongClose), "",
	string(emOpen), "", string(emClose), "",
)

// parseInline applies the strong rule, then the emphasis rule over the whole
// result (strong markers count as ordinary characters), then builds the tree.
func parseInline(s string) []Inline {
	s = strongSpan.ReplaceAllString(s, string(strongOpen)+"${1}"+string(strongClose))
	s = emphasisSpan.ReplaceAllString(s, string(emOpen)+"${1}"+string(emClose))
	return buildInlines(s)
}

// buildInlines turns marked text into a tree. When an emphasis span and a
// strong span overlap without nesting, the inner span is closed at the
// boundary and reopened after it.
func buildInlines(s string) []Inline {
	root := &Inline{}
	stack := []*Inline{root}
	var text strings.Builder

	top := func() *Inline { return stack[len(stack)-1] }
	flushText := func() {
		if text.Len() == 0 {
			return
		}
		t := top()
		t.Children = append(t.Children, Inline{Kind: InlineText, Text: text.String()})
		text.Reset()
	}
	push := func(kind InlineKind) {
		stack = append(stack, &Inline{Kind: kind})
	}
	pop := func() {
		n := top()
		stack = stack[:len(stack)-1]
		p := top()
		p.Children = append(p.Children, *n)
	}

	for _, r := range s {
		switch r {
		case strongOpen:
			flushText()
			push(InlineStrong)
		case emOpen:
			flushText()
			push(InlineEmphasis)
		case strongClose, emClose:
			flushText()
			want := InlineStrong
			if r == emClose {
				want = InlineEmphasis
			}
			var reopen []InlineKind
			for len(stack) > 1 && top().Kind != want {
				reopen = append(reopen, top().Kind)
				pop()
			}
			if len(stack) > 1 {
				pop()
			}
			for i := len(reopen) - 1; i >= 0; i-- {
				push(reopen[i])
			}
		case '\n':
			flushText()
			t := top()
			t.Children = append(t.Children, Inline{Kind: InlineBreak})
		default:
			text.WriteRune(r)
		}
	}
	flushText()
	for len(stack) > 1 {
		pop()
	}
	return root.Children
}
