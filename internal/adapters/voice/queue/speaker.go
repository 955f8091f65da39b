package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/bnema/vcalc/internal/ports"
)

const defaultCapacity = 16

var (
	ErrFull   = errors.New("speech queue is full")
	ErrClosed = errors.New("speech queue closed")
)

// Speaker hands utterances to a background worker so callers such as an
// interactive UI never wait for audio. Utterances play in order.
type Speaker struct {
	next   ports.Speaker
	logger *slog.Logger
	items  chan string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

var _ ports.Speaker = (*Speaker)(nil)

func NewSpeaker(next ports.Speaker, capacity int, logger *slog.Logger) *Speaker {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Speaker{
		next:   next,
		logger: logger,
		items:  make(chan string, capacity),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.work()

	return s
}

// Speak queues text and returns immediately. ctx only guards the enqueue.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}

	select {
	case s.items <- text:
		return nil
	default:
		return ErrFull
	}
}

// Close drops queued utterances, interrupts the current one and waits for
// the worker to exit.
func (s *Speaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return nil
	}
	s.closed = true
	s.cancel()
	close(s.items)
	s.mu.Unlock()

	<-s.done

	return nil
}

func (s *Speaker) work() {
	defer close(s.done)

	for text := range s.items {
		if s.ctx.Err() != nil {
			continue
		}
		if err := s.next.Speak(s.ctx, text); err != nil && s.ctx.Err() == nil {
			s.logger.Warn("queued speech failed", "text", text, "error", err)
		}
	}
}
