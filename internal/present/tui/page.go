package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/editor"
	"github.com/mithrel/gyani/internal/present/format"
	"github.com/mithrel/gyani/pkg/models"
)

const (
	buttonIdle    = "Generate Research Content"
	buttonLoading = "Generating..."
	copyHint      = "[ctrl+y] Copy to Clipboard"
	helpLine      = "alt+enter/ctrl+s generate • tab model • ctrl+l clear • ctrl+y copy • ctrl+e editor • pgup/pgdn scroll • esc quit"

	inputHeight = 5
)

// Options configures the research page.
type Options struct {
	Controller     *controller.Controller
	Model          string
	Prompt         string
	Pretty         format.PrettyOptions
	NoticeDuration time.Duration
	EditorCommand  string
	Log            log.Interface
}

// Run opens the research page full screen and blocks until it is closed.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newModel(ctx, opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type model struct {
	ctx  context.Context
	ctrl *controller.Controller
	log  log.Interface

	models   []models.Model
	modelIdx int

	input   textarea.Model
	spinner spinner.Model
	vp      viewport.Model

	pretty   format.PrettyOptions
	renderer *glamour.TermRenderer
	rendered int // wrap width the renderer was built for

	notice    *controller.Notice
	noticeSeq int
	noticeDur time.Duration

	editorCmd string
	status    string
	width     int
	height    int
}

func newModel(ctx context.Context, opts Options) model {
	m := model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		log:       opts.Log,
		pretty:    opts.Pretty,
		noticeDur: opts.NoticeDuration,
		editorCmd: opts.EditorCommand,
		rendered:  -1,
	}
	if m.log == nil {
		m.log = log.Log
	}
	if m.noticeDur <= 0 {
		m.noticeDur = 3 * time.Second
	}
	if cat := m.ctrl.Catalog(); cat != nil {
		m.models = cat.Models()
	}
	m.selectModel(opts.Model)

	m.input = textarea.New()
	m.input.Placeholder = "Enter your research prompt..."
	m.input.ShowLineNumbers = false
	m.input.CharLimit = 0
	m.input.SetHeight(inputHeight)
	m.input.SetValue(opts.Prompt)
	m.input.Focus()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	m.vp = viewport.New(0, 0)
	m.applyLayout()
	return m
}

// selectModel selects id, adding it to the choices when it is not a catalog
// entry. An empty id selects the first choice.
func (m *model) selectModel(id string) {
	if id == "" {
		m.modelIdx = 0
		return
	}
	for i, mm := range m.models {
		if mm.ID == id {
			m.modelIdx = i
			return
		}
	}
	m.models = append(m.models, models.Model{ID: id, Name: m.ctrl.ModelName(id)})
	m.modelIdx = len(m.models) - 1
}

func (m model) currentModel() string {
	if m.modelIdx < 0 || m.modelIdx >= len(m.models) {
		return ""
	}
	return m.models[m.modelIdx].ID
}

func (m model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil

	case settledMsg:
		m.ctrl.Settle(msg.p, msg.res)
		verb := "generated in"
		if msg.res.Failed() {
			verb = "failed after"
		}
		m.status = fmt.Sprintf("%s %s · %s", verb, msg.dur.Round(time.Millisecond), editor.FirstLine(msg.p.Request.Prompt))
		m.refreshOutput()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			return m, m.showNotice(controller.Notice{Kind: controller.NoticeError, Text: "Editor failed: " + msg.err.Error()})
		}
		id, prompt, err := readEdited(msg.path)
		if err != nil {
			return m, m.showNotice(controller.Notice{Kind: controller.NoticeError, Text: "Editor failed: " + err.Error()})
		}
		if id != "" {
			m.selectModel(id)
		}
		m.input.SetValue(prompt)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// a visible notice swallows the next key
		if m.notice != nil {
			m.notice = nil
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "alt+enter", "ctrl+s":
			return m.submit()
		case "tab":
			m.cycleModel(1)
			return m, nil
		case "shift+tab":
			m.cycleModel(-1)
			return m, nil
		case "ctrl+l":
			m.ctrl.Clear()
			m.input.Reset()
			m.status = ""
			m.refreshOutput()
			return m, nil
		case "ctrl+y":
			_ = m.ctrl.CopyCurrentOutput()
			return m, m.drainNotices()
		case "ctrl+e":
			cmd, err := editCmd(m.editorCmd, m.currentModel(), m.input.Value())
			if err != nil {
				return m, m.showNotice(controller.Notice{Kind: controller.NoticeError, Text: "Editor failed: " + err.Error()})
			}
			return m, cmd
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	p, err := m.ctrl.Submit(m.input.Value(), m.currentModel())
	if err != nil {
		m.log.WithError(err).Debug("tui: submit rejected")
		return m, m.drainNotices()
	}
	m.status = ""
	m.refreshOutput()
	return m, generateCmd(m.ctx, p)
}

func (m *model) cycleModel(step int) {
	n := len(m.models)
	if n == 0 {
		return
	}
	m.modelIdx = ((m.modelIdx+step)%n + n) % n
}

// showNotice displays n and schedules its removal.
func (m *model) showNotice(n controller.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	return noticeTimeoutCmd(m.noticeSeq, m.noticeDur)
}

// drainNotices shows the newest pending controller notice.
func (m *model) drainNotices() tea.Cmd {
	var (
		last controller.Notice
		ok   bool
	)
	for {
		n, more := m.ctrl.TakeNotice()
		if !more {
			break
		}
		last, ok = n, true
	}
	if !ok {
		return nil
	}
	return m.showNotice(last)
}

func (m *model) applyLayout() {
	w, h := m.size()
	m.input.SetWidth(max(20, w-2))

	// title, blank, input, blank, model, button, loading, blank, help
	chrome := 2 + inputHeight + 2 + 1 + 1 + 1 + 1 + 1 + 2
	m.vp.Width = max(10, w-2)
	m.vp.Height = max(3, h-chrome)
	m.refreshOutput()
}

// refreshOutput re-renders the display region into the viewport.
func (m *model) refreshOutput() {
	m.vp.SetContent(m.renderRegion(m.ctrl.Region()))
	m.vp.GotoTop()
}

func (m *model) renderRegion(r controller.Region) string {
	width := max(10, m.vp.Width-2)
	switch r.State {
	case controller.StateContent:
		header := headerStyle.Render(format.GeneratedWithLabel) + modelStyle.Render(r.ModelName)
		hint := helpStyle.Render(copyHint)
		gap := max(1, width-lipgloss.Width(header)-lipgloss.Width(hint))
		return header + strings.Repeat(" ", gap) + hint + "\n\n" + m.renderContent(r, width)
	case controller.StateError:
		msg := lipgloss.NewStyle().Width(width).Render(r.Message)
		return errorTitleStyle.Render(format.ErrorTitle) + "\n\n" + msg
	default:
		return placeholderStyle.Render(controller.PlaceholderText)
	}
}

func (m *model) renderContent(r controller.Region, width int) string {
	wrap := m.pretty.WordWrap
	if wrap <= 0 || wrap > width {
		wrap = width
	}
	if m.renderer == nil || m.rendered != wrap {
		opts := m.pretty
		opts.WordWrap = wrap
		tr, err := format.NewRenderer(opts)
		if err != nil {
			m.log.WithError(err).Warn("tui: renderer unavailable")
			return r.PlainText()
		}
		m.renderer, m.rendered = tr, wrap
	}
	out, err := m.renderer.Render(r.Content.Markdown())
	if err != nil {
		m.log.WithError(err).Warn("tui: render failed")
		return r.PlainText()
	}
	return strings.Trim(out, "\n")
}

func (m model) View() string {
	w, _ := m.size()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gyani AI") + " " + subtitleStyle.Render("research assistant") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	name := "(none)"
	if id := m.currentModel(); id != "" {
		name = m.ctrl.ModelName(id)
	}
	b.WriteString(labelStyle.Render("Model: ") + modelStyle.Render("‹ "+name+" ›") + " " + helpStyle.Render("[tab] change") + "\n")

	if m.ctrl.SubmitEnabled() {
		b.WriteString(buttonStyle.Render(buttonIdle) + "\n")
	} else {
		b.WriteString(buttonDisabledStyle.Render(buttonLoading) + "\n")
	}

	switch {
	case m.ctrl.Loading():
		b.WriteString(m.spinner.View() + " Generating research content..." + "\n")
	case m.status != "":
		b.WriteString(helpStyle.Render(m.status) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(outputBorder.Width(max(10, w-2)).Render(m.vp.View()) + "\n")
	b.WriteString(helpStyle.Render(helpLine))

	base := b.String()
	if m.notice == nil {
		return base
	}
	fg, fw, fh := noticeBox(*m.notice, w)
	return m.renderOverlay(base, fg, fw, fh)
}
