package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/bnema/vcalc/internal/domain"
	"github.com/bnema/vcalc/internal/ports"
)

var ErrNoSpeaker = errors.New("no speaker configured")

// Session owns one calculator and the settings it runs with. Calls are
// serialised so a transport and a repeat timer can share it.
type Session struct {
	mu       sync.Mutex
	calc     *domain.Calculator
	settings domain.Settings

	repo    ports.SettingsRepository
	speaker ports.Speaker
	rng     domain.Rand
	logger  *slog.Logger

	modeOverride domain.Mode
}

type Option func(*Session)

// WithMode runs the session in mode without persisting it.
func WithMode(mode domain.Mode) Option {
	return func(s *Session) {
		s.modeOverride = mode
	}
}

func WithRand(rng domain.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(ctx context.Context, repo ports.SettingsRepository, speaker ports.Speaker, opts ...Option) (*Session, error) {
	s := &Session{
		calc:    domain.NewCalculator(),
		repo:    repo,
		speaker: speaker,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	settings, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		s.logger.WarnContext(ctx, "stored settings are invalid, using defaults", "error", err)
		settings = domain.DefaultSettings()
	}
	if s.modeOverride != "" {
		if !s.modeOverride.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, s.modeOverride)
		}
		settings.Mode = s.modeOverride
	}
	s.settings = settings

	return s, nil
}

func (s *Session) Press(ctx context.Context, token domain.Token) (Output, error) {
	if !token.Valid() {
		return Output{}, fmt.Errorf("%w: %q", domain.ErrUnknownToken, token)
	}

	s.mu.Lock()
	var (
		outcome    domain.Outcome
		expression string
	)
	if token == domain.TokenRandom {
		calc := domain.NewRandomCalculation(s.rng, s.settings.Mode, s.settings.RandomMin, s.settings.RandomMax)
		outcome = s.calc.ApplyRandom(calc)
		expression = calc.Expression
	} else {
		outcome = s.calc.Press(token)
	}
	out := s.outputLocked()
	out.Evaluated = outcome.Evaluated
	out.Ignored = outcome.Ignored
	out.Expression = expression
	out.Phrases = outcome.Phrases
	voice := s.settings.VoiceEnabled
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "token pressed",
		"token", string(token),
		"display", out.Display,
		"formula", out.Formula,
		"ignored", out.Ignored,
	)
	if out.Error && outcome.Evaluated {
		s.logger.InfoContext(ctx, "calculation produced an error value", "value", out.Current)
	}

	if voice {
		s.speak(ctx, outcome.Phrases)
	}

	return out, nil
}

// PressAll applies tokens in order and returns the output after the last one.
func (s *Session) PressAll(ctx context.Context, tokens []domain.Token) (Output, error) {
	out := s.Snapshot()
	for _, token := range tokens {
		var err error
		out, err = s.Press(ctx, token)
		if err != nil {
			return Output{}, err
		}
	}

	return out, nil
}

func (s *Session) Snapshot() Output {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.outputLocked()
}

func (s *Session) outputLocked() Output {
	digits := s.settings.RoundingDigits

	return Output{
		Display:  s.calc.Display(digits),
		Formula:  s.calc.Formula(digits),
		Current:  s.calc.Current,
		Operator: s.calc.Operator,
		Operand:  s.calc.Operand,
		Memory:   s.calc.Memory,
		Mode:     s.settings.Mode,
		Error:    s.calc.InError(),
	}
}

func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

func (s *Session) UpdateSettings(ctx context.Context, update SettingsUpdate) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := update.apply(s.settings)
	if err := updated.Validate(); err != nil {
		return s.settings, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return s.settings, fmt.Errorf("save settings: %w", err)
	}
	s.settings = updated

	s.logger.InfoContext(ctx, "settings updated",
		"rounding_digits", updated.RoundingDigits,
		"random_min", updated.RandomMin,
		"random_max", updated.RandomMax,
		"voice_enabled", updated.VoiceEnabled,
		"mode", string(updated.Mode),
	)

	return updated, nil
}

func (s *Session) ResetSettings(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, defaults); err != nil {
		return s.settings, fmt.Errorf("save settings: %w", err)
	}
	s.settings = defaults

	return defaults, nil
}

func (s *Session) SetMode(ctx context.Context, mode domain.Mode) (domain.Settings, error) {
	return s.UpdateSettings(ctx, SettingsUpdate{Mode: &mode})
}

// ReloadSettings re-reads the repository, keeping the current settings when
// the stored ones are invalid.
func (s *Session) ReloadSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return s.Settings(), fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return s.Settings(), err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "settings reloaded")

	return settings, nil
}

// Speak sends text straight to the speaker regardless of the voice setting.
func (s *Session) Speak(ctx context.Context, text string) error {
	if s.speaker == nil {
		return ErrNoSpeaker
	}
	if err := s.speaker.Speak(ctx, domain.SpeakableNumber(text)); err != nil {
		return fmt.Errorf("speak: %w", err)
	}

	return nil
}

func (s *Session) speak(ctx context.Context, phrases []string) {
	if s.speaker == nil {
		return
	}

	for _, phrase := range phrases {
		if err := s.speaker.Speak(ctx, domain.SpeakableNumber(phrase)); err != nil {
			s.logger.WarnContext(ctx, "speak phrase", "phrase", phrase, "error", err)
			return
		}
	}
}
