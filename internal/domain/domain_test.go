package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings func(*Settings)
		wantErr  string
	}{
		{name: "defaults", settings: func(*Settings) {}},
		{name: "max rounding", settings: func(s *Settings) { s.RoundingDigits = MaxRoundingDigits }},
		{name: "negative rounding", settings: func(s *Settings) { s.RoundingDigits = -1 }, wantErr: "rounding digits -1 out of range"},
		{name: "too many digits", settings: func(s *Settings) { s.RoundingDigits = 16 }, wantErr: "rounding digits 16 out of range"},
		{name: "inverted bounds", settings: func(s *Settings) { s.RandomMin, s.RandomMax = 10, 1 }, wantErr: "random min 10 is greater than random max 1"},
		{name: "equal bounds", settings: func(s *Settings) { s.RandomMin, s.RandomMax = 3, 3 }},
		{name: "widest bounds", settings: func(s *Settings) { s.RandomMin, s.RandomMax = -MaxRandomBound, MaxRandomBound }},
		{name: "min below bound", settings: func(s *Settings) { s.RandomMin = math.MinInt }, wantErr: "random bounds"},
		{name: "max above bound", settings: func(s *Settings) { s.RandomMax = math.MaxInt }, wantErr: "random bounds"},
		{name: "unknown mode", settings: func(s *Settings) { s.Mode = "graphing" }, wantErr: "mode \"graphing\""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			settings := DefaultSettings()
			tc.settings(&settings)

			err := settings.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Settings{
		RoundingDigits: 4,
		RandomMin:      0,
		RandomMax:      1000,
		VoiceEnabled:   true,
		Mode:           ModeSimple,
	}, DefaultSettings())
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode("scientific")
	require.NoError(t, err)
	assert.Equal(t, ModeScientific, mode)

	_, err = ParseMode("rpn")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Token
	}{
		{raw: "7", want: "7"},
		{raw: ".", want: TokenDecimal},
		{raw: "+", want: TokenAdd},
		{raw: "×", want: TokenMultiply},
		{raw: "÷", want: TokenDivide},
		{raw: "−", want: TokenSubtract},
		{raw: "=", want: TokenEquals},
		{raw: "C", want: TokenClear},
		{raw: "2^", want: TokenSquare},
		{raw: "x²", want: TokenSquare},
		{raw: "π", want: TokenPi},
		{raw: "SIN", want: TokenSin},
		{raw: " m+ ", want: TokenMemoryAdd},
		{raw: "random", want: TokenRandom},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseToken(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTokenRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "(", "12", "sinh"} {
		_, err := ParseToken(raw)
		assert.ErrorIs(t, err, ErrUnknownToken, "raw %q", raw)
	}
}

func TestParseTokensExpandsNumbers(t *testing.T) {
	t.Parallel()

	tokens, err := ParseTokens([]string{"12.5 * 4", "="})
	require.NoError(t, err)
	assert.Equal(t, []Token{"1", "2", ".", "5", TokenMultiply, "4", TokenEquals}, tokens)

	_, err = ParseTokens([]string{"2", "%", "3"})
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestTokenKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindDigit, Token("0").Kind())
	assert.Equal(t, KindOperator, TokenDivide.Kind())
	assert.Equal(t, KindUnary, TokenSquare.Kind())
	assert.Equal(t, KindConstant, TokenE.Kind())
	assert.Equal(t, KindMemory, TokenMemoryRecall.Kind())
	assert.Equal(t, KindUnknown, Token("%").Kind())
	assert.False(t, Token("").Valid())
}
