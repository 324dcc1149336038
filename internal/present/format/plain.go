package format

import (
	"io"

	"github.com/mithrel/gyani/internal/controller"
)

// WritePlain writes the visible text only: the content without its header,
// the error message, or the placeholder.
func WritePlain(w io.Writer, r controller.Region) error {
	text := r.Text()
	if text == "" {
		return nil
	}
	_, err := io.WriteString(w, text+"\n")
	return err
}
