package format

import (
	"io"
	"strings"

	"github.com/mithrel/gyani/internal/controller"
)

// RegionHTML returns the markup the web page puts in its output element.
// Nothing is escaped.
func RegionHTML(r controller.Region) string {
	var b strings.Builder
	switch r.State {
	case controller.StateContent:
		b.WriteString(`<div class="output-header"><small>` + GeneratedWithLabel + `<strong>` + r.ModelName + `</strong></small></div>`)
		b.WriteString(`<div class="research-content">` + r.Content.HTML() + `</div>`)
	case controller.StateError:
		b.WriteString(`<div class="error"><h3>` + ErrorTitle + `</h3><p>` + r.Message + `</p></div>`)
	default:
		b.WriteString(`<p class="placeholder">` + controller.PlaceholderText + `</p>`)
	}
	return b.String()
}

// WriteHTML writes RegionHTML followed by a newline.
func WriteHTML(w io.Writer, r controller.Region) error {
	_, err := io.WriteString(w, RegionHTML(r)+"\n")
	return err
}
