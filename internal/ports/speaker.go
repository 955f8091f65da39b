package ports

import "context"

// Speaker announces text. A new utterance may cut off the previous one.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
