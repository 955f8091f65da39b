package display

import "github.com/charmbracelet/lipgloss"

// AccentPalette holds the colours a result may be highlighted with.
var AccentPalette = []lipgloss.Color{
	"#6200ee",
	"#1e88e5",
	"#e53935",
	"#43a047",
	"#ff9800",
	"#8e24aa",
	"#00bcd4",
}

const defaultAccent = lipgloss.Color("39")

type styles struct {
	frame      lipgloss.Style
	formula    lipgloss.Style
	display    lipgloss.Style
	errorValue lipgloss.Style
	expression lipgloss.Style
	status     lipgloss.Style
	memory     lipgloss.Style
}

func newStyles(accent lipgloss.Color) styles {
	if accent == "" {
		accent = defaultAccent
	}

	return styles{
		frame:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		formula:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		display:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		errorValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		expression: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		status:     lipgloss.NewStyle().Faint(true),
		memory:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
