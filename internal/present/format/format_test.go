package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/render"
)

func contentRegion(raw string) controller.Region {
	return controller.Region{
		State:     controller.StateContent,
		ModelID:   "qwen/qwen-2.5-72b-instruct",
		ModelName: "Qwen2.5 72B",
		Raw:       raw,
		Content:   render.Format(raw),
	}
}

var errorRegion = controller.Region{
	State:   controller.StateError,
	Message: controller.ErrorText("HTTP error! Status: 500"),
}

func TestRegionHTML(t *testing.T) {
	got := RegionHTML(contentRegion("# Title\n\nBody **bold**"))
	assert.Equal(t, `<div class="output-header"><small>Generated with: <strong>Qwen2.5 72B</strong></small></div>`+
		`<div class="research-content"><h1>Title</h1><p>Body <strong>bold</strong></p></div>`, got)

	assert.Equal(t, `<div class="error"><h3>❌ Error</h3><p>An error occurred: HTTP error! Status: 500. Please try again or contact support.</p></div>`,
		RegionHTML(errorRegion))
	assert.Equal(t, `<p class="placeholder">Your generated research content will appear here...</p>`,
		RegionHTML(controller.Region{}))
}

func TestMarkdownDocument(t *testing.T) {
	doc := MarkdownDocument(contentRegion("# Title\n\nBody"))
	assert.Equal(t, "Generated with: **Qwen2.5 72B**\n\n---\n\n# Title\n\nBody\n", doc)

	assert.Equal(t, "### ❌ Error\n\nAn error occurred: HTTP error! Status: 500. Please try again or contact support.\n",
		MarkdownDocument(errorRegion))
	assert.Equal(t, "_Your generated research content will appear here..._\n", MarkdownDocument(controller.Region{}))
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlain(&buf, contentRegion("# Title\n\nBody *x*")))
	assert.Equal(t, "Title\n\nBody x\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePlain(&buf, contentRegion("")))
	assert.Equal(t, "", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, contentRegion("**hi**"), false))

	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Result{
		State:     "content",
		Model:     "qwen/qwen-2.5-72b-instruct",
		ModelName: "Qwen2.5 72B",
		Response:  "**hi**",
		Text:      "hi",
		HTML:      "<p><strong>hi</strong></p>",
	}, got)
	assert.Contains(t, buf.String(), "<strong>")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, errorRegion, true))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"state\": \"error\""))
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, contentRegion("# Title\n\nSome body text"), PrettyOptions{Style: "notty", WordWrap: 60}))
	out := buf.String()
	assert.Contains(t, out, "Qwen2.5 72B")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some body text")
}

func TestNewRendererMissingStyleFile(t *testing.T) {
	_, err := RenderPretty(contentRegion("x"), PrettyOptions{Style: "/nonexistent/style.json"})
	assert.Error(t, err)
}
