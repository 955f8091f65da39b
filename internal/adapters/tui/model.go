package tui

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/bnema/vcalc/internal/adapters/render/display"
	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

// Session is the part of application.Session the UI drives.
type Session interface {
	Press(ctx context.Context, token domain.Token) (application.Output, error)
	Snapshot() application.Output
	Settings() domain.Settings
	SetMode(ctx context.Context, mode domain.Mode) (domain.Settings, error)
	ReloadSettings(ctx context.Context) (domain.Settings, error)
}

type repeatMsg struct{}

type settingsReloadedMsg struct {
	err error
}

type model struct {
	ctx      context.Context
	session  Session
	repeater *application.Repeater
	keys     keyMap
	help     help.Model
	styles   styles

	out      application.Output
	settings domain.Settings
	accent   lipgloss.Color
	notice   string
	err      error

	pickAccent func() lipgloss.Color
	hush       func()
	width      int
}

func newModel(ctx context.Context, session Session, repeater *application.Repeater) model {
	settings := session.Settings()
	keys := newKeyMap()
	keys.setMode(settings.Mode)

	return model{
		ctx:        ctx,
		session:    session,
		repeater:   repeater,
		keys:       keys,
		help:       help.New(),
		styles:     newStyles(),
		out:        session.Snapshot(),
		settings:   settings,
		pickAccent: randomAccent,
		width:      panelWidth,
	}
}

func randomAccent() lipgloss.Color {
	return display.AccentPalette[rand.IntN(len(display.AccentPalette))]
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case repeatMsg:
		// Fires can still be in flight after a release.
		if m.repeater == nil || !m.repeater.Active() {
			return m, nil
		}
		return m.press(domain.TokenRandom), nil
	case settingsReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.settings = m.session.Settings()
		m.keys.setMode(m.settings.Mode)
		m.out = m.session.Snapshot()
		m.notice = "settings reloaded"
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.release()
		m.silence()
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Hold) {
		if m.repeater == nil {
			return m, nil
		}
		if m.repeater.Active() {
			m.release()
			m.notice = ""
			return m, nil
		}
		m.repeater.Press()
		m.notice = "holding random"
		return m, nil
	}

	// Any other key ends a hold, as lifting the finger would.
	m.release()
	m.notice = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mode):
		return m.toggleMode(), nil
	case key.Matches(msg, m.keys.Equals):
		return m.press(domain.TokenEquals), nil
	case key.Matches(msg, m.keys.Clear):
		m.silence()
		return m.press(domain.TokenClear), nil
	case key.Matches(msg, m.keys.Random):
		return m.press(domain.TokenRandom), nil
	case key.Matches(msg, m.keys.Digits, m.keys.Decimal, m.keys.Operator):
		token, err := domain.ParseToken(msg.String())
		if err != nil {
			m.err = err
			return m, nil
		}
		return m.press(token), nil
	}

	for _, tb := range m.keys.tokens {
		if key.Matches(msg, tb.binding) {
			return m.press(tb.token), nil
		}
	}

	return m, nil
}

func (m model) press(token domain.Token) model {
	out, err := m.session.Press(m.ctx, token)
	if err != nil {
		m.err = err
		return m
	}

	m.out = out
	if out.Evaluated && !out.Error {
		m.accent = m.pickAccent()
	}
	if token == domain.TokenClear {
		m.accent = ""
	}

	return m
}

func (m model) toggleMode() model {
	next := domain.ModeScientific
	if m.settings.Mode == domain.ModeScientific {
		next = domain.ModeSimple
	}

	settings, err := m.session.SetMode(m.ctx, next)
	if err != nil {
		m.err = err
		return m
	}

	m.settings = settings
	m.keys.setMode(settings.Mode)
	m.out = m.session.Snapshot()

	return m
}

func (m *model) release() {
	if m.repeater != nil {
		m.repeater.Release()
	}
}

func (m model) silence() {
	if m.hush != nil {
		m.hush()
	}
}
