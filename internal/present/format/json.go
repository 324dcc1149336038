package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/gyani/internal/controller"
)

// Result is the JSON shape of a settled region.
type Result struct {
	State     string `json:"state"`
	Model     string `json:"model,omitempty"`
	ModelName string `json:"model_name,omitempty"`
	Response  string `json:"response,omitempty"`
	Text      string `json:"text,omitempty"`
	HTML      string `json:"html,omitempty"`
	Error     string `json:"error,omitempty"`
}

func NewResult(r controller.Region) Result {
	out := Result{State: r.State.String()}
	switch r.State {
	case controller.StateContent:
		out.Model = r.ModelID
		out.ModelName = r.ModelName
		out.Response = r.Raw
		out.Text = r.PlainText()
		out.HTML = r.Content.HTML()
	case controller.StateError:
		out.Error = r.Message
	}
	return out
}

func WriteJSON(w io.Writer, r controller.Region, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(NewResult(r))
}
