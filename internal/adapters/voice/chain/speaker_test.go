package chain

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/vcalc/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpeakerUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeaker(t)
	fallback := portmocks.NewMockSpeaker(t)
	speaker, err := NewSpeaker(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Speak(mock.Anything, "plus").Return(nil).Once()

	require.NoError(t, speaker.Speak(context.Background(), "plus"))
}

func TestSpeakerFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeaker(t)
	fallback := portmocks.NewMockSpeaker(t)
	speaker, err := NewSpeaker(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Speak(mock.Anything, "plus").Return(errors.New("speech command unavailable")).Once()
	fallback.EXPECT().Speak(mock.Anything, "plus").Return(nil).Once()

	require.NoError(t, speaker.Speak(context.Background(), "plus"))
}

func TestSpeakerReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeaker(t)
	fallback := portmocks.NewMockSpeaker(t)
	speaker, err := NewSpeaker(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Speak(mock.Anything, "plus").Return(errors.New("say failed")).Once()
	fallback.EXPECT().Speak(mock.Anything, "plus").Return(errors.New("log failed")).Once()

	err = speaker.Speak(context.Background(), "plus")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary speaker")
	assert.ErrorContains(t, err, "fallback speaker")
	assert.ErrorContains(t, err, "say failed")
	assert.ErrorContains(t, err, "log failed")
}

func TestSpeakerDoesNotFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeaker(t)
	fallback := portmocks.NewMockSpeaker(t)
	speaker, err := NewSpeaker(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Speak(mock.Anything, "plus").Return(context.Canceled).Once()

	err = speaker.Speak(context.Background(), "plus")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewSpeakerRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewSpeaker(nil, portmocks.NewMockSpeaker(t))
	require.ErrorIs(t, err, errNilPrimarySpeaker)

	_, err = NewSpeaker(portmocks.NewMockSpeaker(t), nil)
	require.ErrorIs(t, err, errNilFallbackSpeaker)
}
