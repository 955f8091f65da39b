package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/bnema/vcalc/internal/ports"
)

// Speaker writes utterances to a logger. It stands in for audio on headless
// machines and never fails.
type Speaker struct {
	logger *slog.Logger
}

var _ ports.Speaker = (*Speaker)(nil)

func NewSpeaker(logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Speaker{logger: logger}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "speak", "text", text)

	return nil
}
