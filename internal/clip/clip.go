// Package clip wraps the system clipboard behind a small interface.
package clip

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// Writer copies text to a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the OS clipboard (pbcopy, xclip, xsel, wl-copy, ...).
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last copied text. Set Err to simulate a denied write.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
	Err  error
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	m.n++
	return nil
}

// Text returns the last successfully copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
