package display

import (
	"errors"
	"io"

	"github.com/bnema/vcalc/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	outputs []application.Output
	opts    RenderOptions
	styles  styles
	view    string
}

func newModel(outputs []application.Output, opts RenderOptions) model {
	return model{
		outputs: outputs,
		opts:    opts,
		styles:  newStyles(opts.Accent),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.view = renderPanels(m.outputs, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.view
}

// Render draws one panel per output, stacked, for non-interactive commands.
func Render(opts RenderOptions, outputs ...application.Output) (string, error) {
	p := tea.NewProgram(
		newModel(outputs, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
