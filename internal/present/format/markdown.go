package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/mithrel/gyani/internal/controller"
)

// PrettyOptions configures the glamour renderer.
type PrettyOptions struct {
	Style    string
	WordWrap int
}

// DefaultPrettyOptions matches the shipped configuration defaults.
var DefaultPrettyOptions = PrettyOptions{Style: "dracula", WordWrap: 80}

// NewRenderer builds a glamour renderer. Style is a standard style name,
// "auto", or a path to a JSON style file.
func NewRenderer(opts PrettyOptions) (*glamour.TermRenderer, error) {
	var style glamour.TermRendererOption
	switch _, std := styles.DefaultStyles[opts.Style]; {
	case opts.Style == "":
		style = glamour.WithStandardStyle(DefaultPrettyOptions.Style)
	case opts.Style == "auto":
		style = glamour.WithAutoStyle()
	case std:
		style = glamour.WithStandardStyle(opts.Style)
	default:
		style = glamour.WithStylePath(opts.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(opts.WordWrap))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return r, nil
}

// RenderPretty returns the region rendered for a terminal.
func RenderPretty(r controller.Region, opts PrettyOptions) (string, error) {
	tr, err := NewRenderer(opts)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(MarkdownDocument(r))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// WritePretty renders the region with glamour.
func WritePretty(w io.Writer, r controller.Region, opts PrettyOptions) error {
	out, err := RenderPretty(r, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// WriteMarkdown writes the unrendered Markdown document.
func WriteMarkdown(w io.Writer, r controller.Region) error {
	_, err := io.WriteString(w, MarkdownDocument(r))
	return err
}
