package domain

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel display values. Error marks an expression that could not be
// evaluated; the others are the non-finite float results.
const (
	SentinelError  = "Error"
	SentinelNaN    = "NaN"
	SentinelInf    = "Infinity"
	SentinelNegInf = "-Infinity"
)

func IsSentinel(value string) bool {
	switch value {
	case SentinelError, SentinelNaN, SentinelInf, SentinelNegInf:
		return true
	default:
		return false
	}
}

// FormatNumber renders a float the way results are stored in the calculator:
// shortest round-trip decimal text without exponent.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return SentinelNaN
	case math.IsInf(v, 1):
		return SentinelInf
	case math.IsInf(v, -1):
		return SentinelNegInf
	case v == 0:
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber accepts plain decimal text with an optional sign and at most one
// decimal point. Thousands separators are ignored. Sentinels, exponents and
// the special spellings strconv understands ("inf", "0x1p2") are rejected.
func ParseNumber(value string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if !isDecimalText(cleaned) {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func isDecimalText(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}

	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}

// Evaluate computes left OP right for the single binary operation the
// calculator can hold. Division by zero yields the IEEE result.
func Evaluate(left string, op Token, right string) string {
	l, ok := ParseNumber(left)
	if !ok {
		return SentinelError
	}
	r, ok := ParseNumber(right)
	if !ok {
		return SentinelError
	}

	switch op {
	case TokenAdd:
		return FormatNumber(l + r)
	case TokenSubtract:
		return FormatNumber(l - r)
	case TokenMultiply:
		return FormatNumber(l * r)
	case TokenDivide:
		return FormatNumber(l / r)
	default:
		return SentinelError
	}
}

// ApplyUnary evaluates a scientific function. Angles are radians and log is
// base 10.
func ApplyUnary(fn Token, value string) string {
	v, ok := ParseNumber(value)
	if !ok {
		return SentinelError
	}

	switch fn {
	case TokenSin:
		return FormatNumber(math.Sin(v))
	case TokenCos:
		return FormatNumber(math.Cos(v))
	case TokenTan:
		return FormatNumber(math.Tan(v))
	case TokenLog:
		return FormatNumber(math.Log10(v))
	case TokenSqrt:
		return FormatNumber(math.Sqrt(v))
	case TokenSquare:
		return FormatNumber(v * v)
	default:
		return SentinelError
	}
}

func ConstantValue(token Token) (float64, bool) {
	switch token {
	case TokenPi:
		return math.Pi, true
	case TokenE:
		return math.E, true
	default:
		return 0, false
	}
}
