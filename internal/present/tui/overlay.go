package tui

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/gyani/internal/controller"
)

// renderOverlay composes a centered box on top of the given base view string.
func (m model) renderOverlay(base, fg string, overlayW, overlayH int) string {
	termW, termH := m.size()
	x := max(0, (termW-overlayW)/2)
	y := max(0, (termH-overlayH)/2)

	dimBase := lipgloss.NewStyle().Faint(true).Render(base)

	baseLayer := lipgloss.NewLayer(dimBase).
		Width(termW).
		Height(termH)
	fgLayer := lipgloss.NewLayer(fg).
		Width(overlayW).
		Height(overlayH).
		X(x).
		Y(y)

	return lipgloss.NewCanvas(baseLayer, fgLayer).Render()
}

// noticeBox renders n as a bordered box, colored by kind.
func noticeBox(n controller.Notice, termW int) (string, int, int) {
	color := lipgloss.Color("63")
	switch n.Kind {
	case controller.NoticeSuccess:
		color = lipgloss.Color("42")
	case controller.NoticeError:
		color = lipgloss.Color("203")
	}
	w := min(max(lipgloss.Width(n.Text)+6, 30), max(20, termW-4))
	box := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Align(lipgloss.Center).
		Render(n.Text + "\n\n" + lipgloss.NewStyle().Faint(true).Render("press any key"))
	return box, lipgloss.Width(box), lipgloss.Height(box)
}
