package present

import (
	"fmt"
	"io"

	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/present/format"
)

type Mode int

const (
	ModePretty Mode = iota
	ModePlain
	ModeHTML
	ModeMarkdown
	ModeJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string
	WordWrap   int
}

// ParseMode parses "pretty", "plain", "html", "markdown" or "json".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "pretty":
		return ModePretty, true
	case "plain":
		return ModePlain, true
	case "html":
		return ModeHTML, true
	case "markdown", "md":
		return ModeMarkdown, true
	case "json":
		return ModeJSON, true
	default:
		return ModePretty, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeHTML:
		return "html"
	case ModeMarkdown:
		return "markdown"
	case ModeJSON:
		return "json"
	default:
		return "pretty"
	}
}

// RenderRegion writes a settled display region according to options.
func RenderRegion(w io.Writer, r controller.Region, opts Options) error {
	switch opts.Mode {
	case ModePretty:
		return format.WritePretty(w, r, format.PrettyOptions{Style: opts.Style, WordWrap: opts.WordWrap})
	case ModePlain:
		return format.WritePlain(w, r)
	case ModeHTML:
		return format.WriteHTML(w, r)
	case ModeMarkdown:
		return format.WriteMarkdown(w, r)
	case ModeJSON:
		return format.WriteJSON(w, r, opts.JSONIndent)
	default:
		return fmt.Errorf("unknown output mode %d", opts.Mode)
	}
}
