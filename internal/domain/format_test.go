package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		digits int
		want   string
	}{
		{name: "empty reads zero", value: "", digits: 4, want: "0"},
		{name: "lone decimal point", value: ".", digits: 4, want: "0."},
		{name: "small integer", value: "100", digits: 4, want: "100"},
		{name: "thousands", value: "1000", digits: 4, want: "1,000"},
		{name: "millions", value: "1234567", digits: 4, want: "1,234,567"},
		{name: "six digits", value: "123456", digits: 4, want: "123,456"},
		{name: "rounds long fraction", value: "1234.56789", digits: 4, want: "1,234.5679"},
		{name: "float noise trimmed", value: "0.30000000000000004", digits: 4, want: "0.3"},
		{name: "rounding carries", value: "9.99999", digits: 4, want: "10"},
		{name: "typed trailing decimal kept", value: "3.", digits: 4, want: "3."},
		{name: "typed trailing zero kept", value: "0.50", digits: 4, want: "0.50"},
		{name: "leading decimal", value: ".5", digits: 4, want: "0.5"},
		{name: "negative", value: "-1234.5", digits: 2, want: "-1,234.5"},
		{name: "negative rounds to zero", value: "-0.00001", digits: 4, want: "0"},
		{name: "zero digits", value: "1234.9", digits: 0, want: "1,235"},
		{name: "half rounds up", value: "1234.5", digits: 0, want: "1,235"},
		{name: "half rounds up on even digit", value: "2.5", digits: 0, want: "3"},
		{name: "half of fraction rounds up", value: "0.125", digits: 2, want: "0.13"},
		{name: "negative half rounds away from zero", value: "-2.5", digits: 0, want: "-3"},
		{name: "carry into new integer digit", value: ".96", digits: 1, want: "1"},
		{name: "long integer keeps every digit", value: "12345678901234567890.123456", digits: 4, want: "12,345,678,901,234,567,890.1235"},
		{name: "already formatted", value: "1,234.5", digits: 4, want: "1,234.5"},
		{name: "pi", value: FormatNumber(math.Pi), digits: 4, want: "3.1416"},
		{name: "error passes through", value: SentinelError, digits: 4, want: SentinelError},
		{name: "nan passes through", value: SentinelNaN, digits: 4, want: SentinelNaN},
		{name: "infinity passes through", value: SentinelNegInf, digits: 4, want: SentinelNegInf},
		{name: "text passes through", value: "hello", digits: 4, want: "hello"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatDisplay(tc.value, tc.digits))
		})
	}
}

func TestFormatDisplayIsIdempotent(t *testing.T) {
	t.Parallel()

	values := []string{
		"", ".", "0", "3.", "0.50", "12", "1234", "-98765.4321", "1234567.891011",
		"0.30000000000000004", "9.99999", "-0.00001", "100000000000000000000",
		"2.5", "12345678901234567890.123456",
		SentinelError, SentinelInf, "abc",
	}

	for _, digits := range []int{0, 2, 4, 10} {
		for _, value := range values {
			once := FormatDisplay(value, digits)
			assert.Equal(t, once, FormatDisplay(once, digits), "value %q digits %d", value, digits)
		}
	}
}

func TestFormulaText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		operand  string
		operator string
		current  string
		want     string
	}{
		{name: "empty", want: "0"},
		{name: "current only", current: "5", want: "5"},
		{name: "multiply glyph", operand: "2", operator: "*", current: "3", want: "2 × 3"},
		{name: "divide glyph awaiting input", operand: "7", operator: "/", want: "7 ÷"},
		{name: "minus glyph", operand: "7", operator: "-", current: "1", want: "7 − 1"},
		{name: "plus unchanged", operand: "1", operator: "+", current: "1", want: "1 + 1"},
		{name: "square glyph", operand: "4", operator: "2^", want: "4 ²"},
		{name: "unknown operator passes through", operand: "4", operator: "mod", current: "3", want: "4 mod 3"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormulaText(tc.operand, tc.operator, tc.current))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "-2.5", FormatNumber(-2.5))
	assert.Equal(t, "1000000000000000000000", FormatNumber(1e21))
	assert.Equal(t, SentinelNaN, FormatNumber(math.NaN()))
	assert.Equal(t, SentinelInf, FormatNumber(math.Inf(1)))
	assert.Equal(t, SentinelNegInf, FormatNumber(math.Inf(-1)))
}

func TestParseNumberRejectsNonDecimalText(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", ".", "-", "Infinity", "inf", "NaN", "1e5", "0x10", "1.2.3", "Error"} {
		_, ok := ParseNumber(value)
		assert.False(t, ok, "value %q", value)
	}

	v, ok := ParseNumber("1,234.5")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v)

	v, ok = ParseNumber("3.")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestSpeakableNumberAndPhrases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234567.5", SpeakableNumber("1,234,567.5"))
	assert.Equal(t, "divided by", TokenPhrase(TokenDivide))
	assert.Equal(t, "zero", TokenPhrase("0"))
	assert.Equal(t, "squared", TokenPhrase(TokenSquare))
	assert.Equal(t, "?", TokenPhrase("?"))
	assert.Equal(t, PhraseError, ResultPhrase(SentinelError))
	assert.Equal(t, "1234", ResultPhrase("1,234"))
}
