package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/gyani/internal/clip"
	"github.com/mithrel/gyani/internal/config"
	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/remote"
	"github.com/mithrel/gyani/internal/wire"
	"github.com/mithrel/gyani/pkg/models"
)

type fakeAPI struct {
	srv    *httptest.Server
	calls  atomic.Int32
	status int
	body   string
	query  atomic.Value
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.query.Store(r.URL.RawQuery)
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// isolate points config lookup and the API at test-owned locations.
func isolate(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("GYANI_BASE_URL", baseURL)
	t.Setenv("GYANI_LOG_OUTPUT", "discard")
	return dir
}

func run(t *testing.T, cb clip.Writer, args ...string) (string, string, error) {
	t.Helper()
	if cb == nil {
		cb = &clip.Memory{}
	}
	root := NewRootCmd(wire.WithClipboard(cb))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestAskHTML(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"# Title\n\nBody **bold** and *italic*"}`)
	isolate(t, api.srv.URL)

	out, _, err := run(t, nil, "ask", "-o", "html", "-m", "qwen/qwen-2.5-72b-instruct", "history", "of", "tea")
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.calls.Load())
	assert.Equal(t, "prompt=history%20of%20tea&model=qwen%2Fqwen-2.5-72b-instruct", api.query.Load())
	assert.Contains(t, out, "Generated with: <strong>Qwen2.5 72B</strong>")
	assert.Contains(t, out, "<h1>Title</h1><p>Body <strong>bold</strong> and <em>italic</em></p>")
}

func TestAskPromptFromStdin(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"plain answer"}`)
	isolate(t, api.srv.URL)

	root := NewRootCmd(wire.WithClipboard(&clip.Memory{}))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("  piped prompt\n"))
	root.SetArgs([]string{"ask", "-o", "plain"})
	require.NoError(t, root.Execute())

	assert.Contains(t, api.query.Load(), "prompt=piped%20prompt&")
	assert.Contains(t, api.query.Load(), "model=meta-llama%2Fllama-3.1-405b-instruct")
	assert.Equal(t, "plain answer\n", out.String())
}

func TestAskPrettyFallsBackToPlainOffTerminal(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"**x**"}`)
	isolate(t, api.srv.URL)

	out, _, err := run(t, nil, "ask", "q")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestAskEmptyPrompt(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"unused"}`)
	isolate(t, api.srv.URL)

	out, errOut, err := run(t, nil, "ask", "   ")
	var verr *controller.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, int32(0), api.calls.Load())
	assert.Empty(t, out)
	assert.Contains(t, errOut, controller.MsgEmptyPrompt)
}

func TestAskHTTPError(t *testing.T) {
	api := newFakeAPI(t, http.StatusInternalServerError, `oops`)
	isolate(t, api.srv.URL)

	out, _, err := run(t, nil, "ask", "-o", "plain", "q")
	var herr *remote.HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, 500, herr.Status)
	assert.Equal(t, "An error occurred: HTTP error! Status: 500. Please try again or contact support.\n", out)
}

func TestAskAPIErrorJSON(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"error":"model overloaded"}`)
	isolate(t, api.srv.URL)

	out, _, err := run(t, nil, "ask", "-o", "json", "q")
	var aerr *remote.APIError
	require.ErrorAs(t, err, &aerr)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "error", res["state"])
	assert.Contains(t, res["error"], "model overloaded")
}

func TestAskCopy(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"# T\n\ncopy *me*"}`)
	isolate(t, api.srv.URL)

	cb := &clip.Memory{}
	_, errOut, err := run(t, cb, "ask", "-o", "plain", "--copy", "q")
	require.NoError(t, err)
	assert.Equal(t, "T\n\ncopy me", cb.Text())
	assert.Contains(t, errOut, controller.MsgCopied)
}

func TestAskInvalidOutput(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"x"}`)
	isolate(t, api.srv.URL)

	_, _, err := run(t, nil, "ask", "-o", "yaml", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --output")
	assert.Equal(t, int32(0), api.calls.Load())
}

func TestBaseURLFlagOverridesEnv(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"response":"x"}`)
	isolate(t, "http://127.0.0.1:1")

	_, _, err := run(t, nil, "--base-url", api.srv.URL+"/", "ask", "-o", "plain", "q")
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestInvalidConfigIsReported(t *testing.T) {
	isolate(t, "ftp://nowhere")

	_, _, err := run(t, nil, "models")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url must be an http or https url")
}

func TestModels(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")

	out, _, err := run(t, nil, "models", "-o", "json")
	require.NoError(t, err)
	var ms []models.Model
	require.NoError(t, json.Unmarshal([]byte(out), &ms))
	assert.Equal(t, models.DefaultModels, ms)

	out, _, err = run(t, nil, "-m", "qwen/qwen-2.5-72b-instruct", "models")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "* qwen/qwen-2.5-72b-instruct"), lines[2])
	assert.True(t, strings.HasPrefix(lines[0], "  meta-llama/"), lines[0])
}

func TestConfigGenerate(t *testing.T) {
	dir := isolate(t, "http://127.0.0.1:1")
	path := filepath.Join(dir, "gyani", "config.toml")

	out, _, err := run(t, nil, "config", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.RenderDefaultTOML(), string(data))

	_, _, err = run(t, nil, "config", "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config already exists")

	out, _, err = run(t, nil, "config", "generate", "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already up to date")

	out, _, err = run(t, nil, "config", "generate", "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup: "+path+".bak")

	_, _, err = run(t, nil, "config", "generate", "--overwrite", "--update")
	require.Error(t, err)
}

func TestCompletionScript(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")
	out, _, err := run(t, nil, "completion", "generate", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gyani-cli")

	_, _, err = run(t, nil, "completion", "generate", "tcsh")
	require.Error(t, err)
}

func TestCompleteModels(t *testing.T) {
	got, dir := completeModels(nil, nil, "qwen72")
	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got[0], "qwen/qwen-2.5-72b-instruct\t"), got[0])
	assert.NotZero(t, dir)

	all, _ := completeModels(nil, nil, "")
	assert.Len(t, all, 4)
}

func TestOutputFlagCompletion(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")

	out, _, err := run(t, nil, "__complete", "ask", "-o", "ht")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "html", lines[0])

	out, _, err = run(t, nil, "__complete", "models", "-o", "")
	require.NoError(t, err)
	assert.Contains(t, out, "plain\njson\n")
}
