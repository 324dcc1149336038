package editor

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	ModelPrefix = "Model: "
	separator   = "---"
)

// ComposePrompt creates the text presented to the editor.
func ComposePrompt(model, prompt string) string {
	var b bytes.Buffer
	b.WriteString("# gyani research prompt\n")
	b.WriteString("# Lines starting with '#' above the separator are ignored.\n")
	b.WriteString("# Change the model id if you like. Write the prompt after '---'.\n")
	b.WriteString(ModelPrefix)
	b.WriteString(model)
	b.WriteString("\n" + separator + "\n")
	if prompt != "" {
		if !strings.HasSuffix(prompt, "\n") {
			prompt += "\n"
		}
		b.WriteString(prompt)
	}
	return b.String()
}

// ParsePrompt extracts the model id and the prompt from the editor output.
// Text without a separator is treated as all prompt.
func ParsePrompt(s string) (model, prompt string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == separator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return "", strings.TrimSpace(s)
	}
	for _, line := range lines[:sep] {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.HasPrefix(line, strings.TrimSpace(ModelPrefix)) {
			model = strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(ModelPrefix)))
		}
	}
	return model, strings.TrimSpace(strings.Join(lines[sep+1:], "\n"))
}

// PreferredEditor finds a suitable editor from env or common defaults.
func PreferredEditor() (string, error) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// PathForRequest returns a temp file path for composing one request.
func PathForRequest(id string) (string, error) {
	name := sanitize(id) + ".gyani.md"
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "gyani", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "gyani", "edit", name), nil
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func writeFile0600(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// PrepareAt writes the initial content to the given path with secure perms.
func PrepareAt(path string, initial []byte) error {
	return writeFile0600(path, initial)
}

// Command builds the editor invocation for path. A configured command or
// $VISUAL/$EDITOR runs through sh so flags like "--wait" are honored.
func Command(configured, path string) (*exec.Cmd, error) {
	ed := strings.TrimSpace(configured)
	if ed == "" {
		ed = strings.TrimSpace(os.Getenv("VISUAL"))
	}
	if ed == "" {
		ed = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if ed != "" {
		cmd := exec.Command("sh", "-c", "$EDITORCMD \"$FILEPATH\"")
		cmd.Env = append(os.Environ(), "EDITORCMD="+ed, "FILEPATH="+path)
		return cmd, nil
	}
	prog, err := PreferredEditor()
	if err != nil {
		return nil, err
	}
	return exec.Command(prog, path), nil
}

// OpenAt opens the editor at path with initial content and returns final bytes and whether it changed.
func OpenAt(configured, path string, initial []byte) (final []byte, changed bool, err error) {
	if err := writeFile0600(path, initial); err != nil {
		return nil, false, err
	}
	cmd, err := Command(configured, path)
	if err != nil {
		return nil, false, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, err
	}
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return out, !bytes.Equal(out, initial), nil
}

const firstLineMax = 120

// FirstLine returns the first trimmed line, squashed and truncated to
// firstLineMax runes.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > firstLineMax {
		s = string([]rune(s)[:firstLineMax])
	}
	return s
}
