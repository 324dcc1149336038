package render

// BlockKind distinguishes top-level blocks.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	default:
		return "unknown"
	}
}

// InlineKind distinguishes spans inside a block.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBreak
	InlineStrong
	InlineEmphasis
)

func (k InlineKind) String() string {
	switch k {
	case InlineText:
		return "text"
	case InlineBreak:
		return "break"
	case InlineStrong:
		return "strong"
	case InlineEmphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}

// Inline is a text run, a line break, or a strong/emphasis span with children.
type Inline struct {
	Kind     InlineKind `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Children []Inline   `json:"children,omitempty"`
}

// Block is a paragraph or a heading. Level is set for headings only and
// equals the number of leading '#' characters.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Level   int       `json:"level,omitempty"`
	Inlines []Inline  `json:"inlines,omitempty"`
}

// Fragment is the formatted form of one response.
type Fragment struct {
	Blocks []Block `json:"blocks"`
}

// Empty reports whether the fragment has no blocks.
func (f Fragment) Empty() bool { return len(f.Blocks) == 0 }

// Text concatenates the text of the inlines, rendering breaks as "\n".
func Text(ins []Inline) string {
	var out []byte
	for _, in := range ins {
		switch in.Kind {
		case InlineText:
			out = append(out, in.Text...)
		case InlineBreak:
			out = append(out, '\n')
		default:
			out = append(out, Text(in.Children)...)
		}
	}
	return string(out)
}
