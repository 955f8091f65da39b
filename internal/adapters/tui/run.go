package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/vcalc/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

// Watcher reports external edits of the settings file.
type Watcher interface {
	Start(ctx context.Context, onChange func(context.Context)) error
}

type Options struct {
	Repeat  application.RepeatConfig
	Watcher Watcher
	Logger  *slog.Logger
	// Hush, when set, cuts off speech in progress on clear and quit.
	Hush   func()
	Input  io.Reader
	Output io.Writer
}

func Run(ctx context.Context, session Session, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Repeat == (application.RepeatConfig{}) {
		opts.Repeat = application.DefaultRepeatConfig()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	repeater := application.NewRepeater(opts.Repeat, nil, nil, func() {
		// Send blocks until the event loop takes the message and the
		// repeater is locked while firing.
		go p.Send(repeatMsg{})
	})
	defer repeater.Release()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	m := newModel(ctx, session, repeater)
	m.hush = opts.Hush
	p = tea.NewProgram(m, programOpts...)

	if opts.Watcher != nil {
		err := opts.Watcher.Start(ctx, func(ctx context.Context) {
			_, err := session.ReloadSettings(ctx)
			if err != nil {
				logger.WarnContext(ctx, "reload settings", "error", err)
			}
			p.Send(settingsReloadedMsg{err: err})
		})
		if err != nil {
			logger.WarnContext(ctx, "settings watcher unavailable", "error", err)
		}
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run calculator ui: %w", err)
	}
	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedModel
	}

	return nil
}
