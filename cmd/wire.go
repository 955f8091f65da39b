package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/vcalc/internal/adapters/render/display"
	tomlrepo "github.com/bnema/vcalc/internal/adapters/repo/toml"
	chainspeaker "github.com/bnema/vcalc/internal/adapters/voice/chain"
	execspeaker "github.com/bnema/vcalc/internal/adapters/voice/exec"
	logspeaker "github.com/bnema/vcalc/internal/adapters/voice/log"
	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/bnema/vcalc/internal/logs"
	"github.com/bnema/vcalc/internal/ports"
	"github.com/spf13/viper"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logFile    string
	settings   string
}

type app struct {
	config   *viper.Viper
	logger   *slog.Logger
	repo     *tomlrepo.Repository
	voice    *execspeaker.Speaker
	speaker  ports.Speaker
	renderer func(display.RenderOptions, ...application.Output) (string, error)
	closers  []func() error
}

func wireApp(config *viper.Viper, stderr io.Writer) (*app, error) {
	logger, closeLog, err := logs.New(logs.Options{
		Level:   config.GetString(keyLogLevel),
		File:    config.GetString(keyLogFile),
		Journal: config.GetBool(keyLogJournal),
		Stderr:  stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	voice := execspeaker.NewSpeaker(execspeaker.Config{
		Command: config.GetString(keyVoiceCmd),
		Voice:   config.GetString(keyVoiceName),
		Rate:    config.GetInt(keyVoiceRate),
	})
	speaker, err := chainspeaker.NewSpeaker(voice, logspeaker.NewSpeaker(logger.With("component", "voice")))
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire speaker chain: %w", err)
	}

	return &app{
		config:   config,
		logger:   logger,
		repo:     repo,
		voice:    voice,
		speaker:  speaker,
		renderer: display.Render,
		closers:  []func() error{voice.Close, closeLog},
	}, nil
}

// newSession builds a calculator session; a nil speaker keeps it silent.
func (a *app) newSession(ctx context.Context, speaker ports.Speaker, mode string) (*application.Session, error) {
	opts := []application.Option{application.WithLogger(a.logger)}
	if mode != "" {
		parsed, err := domain.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, application.WithMode(parsed))
	}

	return application.NewSession(ctx, a.repo, speaker, opts...)
}

func (a *app) close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil

	return errors.Join(errs...)
}

func (a *app) sessionSpeaker(quiet bool) ports.Speaker {
	if quiet {
		return nil
	}

	return a.speaker
}
