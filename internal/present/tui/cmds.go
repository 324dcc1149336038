package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/editor"
	"github.com/mithrel/gyani/pkg/api"
)

// settledMsg carries the outcome of one generation request back to Update.
type settledMsg struct {
	p   *controller.Pending
	res api.GenerationResult
	dur time.Duration
}

// noticeExpiredMsg hides the notice with the same sequence number.
type noticeExpiredMsg struct {
	seq int
}

// editorDoneMsg signals that the external editor exited.
type editorDoneMsg struct {
	path string
	err  error
}

// generateCmd performs the request off the UI goroutine.
func generateCmd(ctx context.Context, p *controller.Pending) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res := p.Run(ctx)
		return settledMsg{p: p, res: res, dur: time.Since(start)}
	}
}

func noticeTimeoutCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

// editCmd writes the compose file and suspends the program while the editor runs.
func editCmd(configured, model, prompt string) (tea.Cmd, error) {
	path, err := editor.PathForRequest(api.NewID())
	if err != nil {
		return nil, err
	}
	if err := editor.PrepareAt(path, []byte(editor.ComposePrompt(model, prompt))); err != nil {
		return nil, err
	}
	c, err := editor.Command(configured, path)
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorDoneMsg{path: path, err: err}
	}), nil
}

// readEdited loads and removes the compose file.
func readEdited(path string) (model, prompt string, err error) {
	defer os.Remove(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	model, prompt = editor.ParsePrompt(string(b))
	return model, prompt, nil
}
