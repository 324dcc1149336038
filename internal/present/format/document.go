package format

import (
	"strings"

	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/render"
)

// Labels shown around generated content.
const (
	GeneratedWithLabel = "Generated with: "
	ErrorTitle         = "❌ Error"
)

// MarkdownDocument renders the region as a Markdown document: a header line
// naming the model followed by the content, the error block, or the
// placeholder in italics.
func MarkdownDocument(r controller.Region) string {
	var b strings.Builder
	switch r.State {
	case controller.StateContent:
		b.WriteString(GeneratedWithLabel + "**" + render.EscapeText(r.ModelName) + "**\n\n")
		b.WriteString("---\n\n")
		if !r.Content.Empty() {
			b.WriteString(r.Content.Markdown())
		}
	case controller.StateError:
		b.WriteString("### " + ErrorTitle + "\n\n")
		b.WriteString(render.EscapeText(r.Message) + "\n")
	default:
		b.WriteString("_" + controller.PlaceholderText + "_\n")
	}
	return b.String()
}
