package display

import (
	"strings"

	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 28

type RenderOptions struct {
	// Width of the value column; the frame adds its border and padding.
	Width          int
	RoundingDigits int
	Accent         lipgloss.Color
}

// Panel renders a single calculator panel. Interactive views call it on
// every frame; Render wraps it for one-shot output.
func Panel(out application.Output, opts RenderOptions) string {
	return renderPanel(out, opts, newStyles(opts.Accent))
}

func renderPanels(outputs []application.Output, opts RenderOptions, s styles) string {
	panels := make([]string, 0, len(outputs))
	for _, out := range outputs {
		panels = append(panels, renderPanel(out, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func renderPanel(out application.Output, opts RenderOptions, s styles) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	right := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)

	valueStyle := s.display
	if out.Error {
		valueStyle = s.errorValue
	}

	lines := []string{
		right.Render(s.formula.Render(fit(out.Formula, width))),
		right.Render(valueStyle.Render(fit(out.Display, width))),
	}
	if out.Expression != "" {
		lines = append(lines, right.Render(s.expression.Render(fit(out.Expression, width))))
	}
	lines = append(lines, statusLine(out, opts, s, width))

	return s.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func statusLine(out application.Output, opts RenderOptions, s styles, width int) string {
	mode := s.status.Render(string(out.Mode))
	if out.Memory == 0 {
		return lipgloss.NewStyle().Width(width).Render(mode)
	}

	memory := s.memory.Render("M " + domain.FormatDisplay(domain.FormatNumber(out.Memory), opts.RoundingDigits))
	gap := width - lipgloss.Width(mode) - lipgloss.Width(memory)
	if gap < 1 {
		gap = 1
	}

	return mode + strings.Repeat(" ", gap) + memory
}

// fit keeps the tail of long values; the least significant digits are the
// ones being typed.
func fit(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}

	return "…" + string(runes[len(runes)-width+1:])
}
