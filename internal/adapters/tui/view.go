package tui

import (
	"github.com/bnema/vcalc/internal/adapters/render/display"
	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 32

type styles struct {
	title  lipgloss.Style
	notice lipgloss.Style
	err    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		notice: lipgloss.NewStyle().Faint(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (m model) View() string {
	lines := []string{
		m.styles.title.Render("vcalc"),
		display.Panel(m.out, display.RenderOptions{
			Width:          m.width,
			RoundingDigits: m.settings.RoundingDigits,
			Accent:         m.accent,
		}),
	}

	switch {
	case m.err != nil:
		lines = append(lines, m.styles.err.Render(m.err.Error()))
	case m.repeater != nil && m.repeater.Active():
		lines = append(lines, m.styles.notice.Render("hold: "+m.repeater.Phase().String()))
	case m.notice != "":
		lines = append(lines, m.styles.notice.Render(m.notice))
	}

	lines = append(lines, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
