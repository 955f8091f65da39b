package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/vcalc/internal/ports"
)

var (
	ErrUnavailable = errors.New("speech command unavailable")
	ErrClosed      = errors.New("speaker closed")
)

// Engines probed in order when no command is configured.
var defaultEngines = []string{"say", "espeak-ng", "espeak", "spd-say"}

type Config struct {
	// Command overrides engine detection. Unknown commands get the text on
	// stdin and no extra arguments.
	Command string
	Voice   string
	// Rate is in words per minute; zero keeps the engine default.
	Rate int
}

type runFunc func(ctx context.Context, input string, name string, args ...string) (stderr string, err error)

type lookPathFunc func(file string) (string, error)

// Speaker drives a text-to-speech command line tool. Starting an utterance
// interrupts the one still playing.
type Speaker struct {
	cfg      Config
	run      runFunc
	lookPath lookPathFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
	closed bool
}

var _ ports.Speaker = (*Speaker)(nil)

func NewSpeaker(cfg Config) *Speaker {
	return &Speaker{cfg: cfg, run: runSpeechCommand, lookPath: osexec.LookPath}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	path, engine, err := s.resolve()
	if err != nil {
		return err
	}

	utterance, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.seq == seq {
			s.cancel = nil
		}
		s.mu.Unlock()
	}()

	stderr, err := s.run(utterance, text, path, engineArgs(engine, s.cfg)...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if utterance.Err() != nil {
			return nil
		}
		return formatError(engine, err, stderr)
	}

	return nil
}

// Cancel stops the utterance in progress, if any.
func (s *Speaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	return nil
}

// Engine reports which command Speak would run.
func (s *Speaker) Engine() (string, error) {
	_, engine, err := s.resolve()
	return engine, err
}

func (s *Speaker) resolve() (string, string, error) {
	candidates := defaultEngines
	if s.cfg.Command != "" {
		candidates = []string{s.cfg.Command}
	}

	for _, candidate := range candidates {
		path, err := s.lookPath(candidate)
		if err == nil {
			return path, filepath.Base(candidate), nil
		}
		if !errors.Is(err, osexec.ErrNotFound) {
			return "", "", fmt.Errorf("locate %s command: %w", candidate, err)
		}
	}

	return "", "", fmt.Errorf("%w: tried %s", ErrUnavailable, strings.Join(candidates, ", "))
}

// The text always goes through stdin so phrases such as "-5" are never
// parsed as flags.
func engineArgs(engine string, cfg Config) []string {
	var args []string

	switch engine {
	case "say":
		if cfg.Voice != "" {
			args = append(args, "-v", cfg.Voice)
		}
		if cfg.Rate > 0 {
			args = append(args, "-r", strconv.Itoa(cfg.Rate))
		}
	case "espeak", "espeak-ng":
		args = append(args, "--stdin")
		if cfg.Voice != "" {
			args = append(args, "-v", cfg.Voice)
		}
		if cfg.Rate > 0 {
			args = append(args, "-s", strconv.Itoa(cfg.Rate))
		}
	case "spd-say":
		args = append(args, "--wait", "--pipe-mode")
		if cfg.Voice != "" {
			args = append(args, "-y", cfg.Voice)
		}
	}

	return args
}

func runSpeechCommand(ctx context.Context, input string, name string, args ...string) (string, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(engine string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s: %w", engine, err)
	}

	return fmt.Errorf("%s: %w: %s", engine, err, stderr)
}
