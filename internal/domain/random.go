package domain

import (
	"fmt"
	"math"
)

// Rand is the subset of math/rand/v2 the random calculation needs.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type RandomCalculation struct {
	Expression string
	Result     float64
	Phrase     string
}

// Value is the result in the form stored as the calculator's current value.
func (r RandomCalculation) Value() string {
	return FormatNumber(r.Result)
}

var randomOperators = []Token{TokenAdd, TokenSubtract, TokenMultiply, TokenDivide}

// NewRandomCalculation picks a random operation for the mode. Integer operands
// are drawn from [min, max); angles for sin and cos from [0, π).
func NewRandomCalculation(rng Rand, mode Mode, min, max int) RandomCalculation {
	if mode == ModeScientific {
		return randomScientific(rng, min, max)
	}

	left, right := randomBetween(rng, min, max), randomBetween(rng, min, max)
	op := randomOperators[rng.IntN(len(randomOperators))]

	return binaryCalculation(left, op, right, 2)
}

func randomScientific(rng Rand, min, max int) RandomCalculation {
	switch rng.IntN(6) {
	case 0:
		n := randomBetween(rng, min, max)
		return scientificCalculation(
			fmt.Sprintf("√%d", n),
			fmt.Sprintf("square root of %d", n),
			math.Sqrt(float64(n)),
		)
	case 1:
		angle := rng.Float64() * math.Pi
		return scientificCalculation(
			fmt.Sprintf("sin(%.4f)", angle),
			fmt.Sprintf("sine of %.4f", angle),
			math.Sin(angle),
		)
	case 2:
		angle := rng.Float64() * math.Pi
		return scientificCalculation(
			fmt.Sprintf("cos(%.4f)", angle),
			fmt.Sprintf("cosine of %.4f", angle),
			math.Cos(angle),
		)
	case 3:
		n := randomBetween(rng, min, max)
		if n < 1 {
			n = 1
		}
		return scientificCalculation(
			fmt.Sprintf("log(%d)", n),
			fmt.Sprintf("logarithm of %d", n),
			math.Log10(float64(n)),
		)
	case 4:
		n := randomBetween(rng, min, max)
		return scientificCalculation(
			fmt.Sprintf("%d²", n),
			fmt.Sprintf("%d squared", n),
			float64(n)*float64(n),
		)
	default:
		left, right := randomBetween(rng, min, max), randomBetween(rng, min, max)
		op := randomOperators[rng.IntN(len(randomOperators))]
		return binaryCalculation(left, op, right, 4)
	}
}

func binaryCalculation(left int, op Token, right int, decimals int) RandomCalculation {
	l, r := float64(left), float64(right)

	var result float64
	switch op {
	case TokenAdd:
		result = l + r
	case TokenSubtract:
		result = l - r
	case TokenMultiply:
		result = l * r
	case TokenDivide:
		result = l / r
	}

	return RandomCalculation{
		Expression: fmt.Sprintf("%d %s %d", left, OperatorGlyph(string(op)), right),
		Result:     result,
		Phrase: fmt.Sprintf("Random calculation: %d %s %d equals %s",
			left, TokenPhrase(op), right, fixedDecimals(result, decimals)),
	}
}

func scientificCalculation(expr, spoken string, result float64) RandomCalculation {
	return RandomCalculation{
		Expression: expr,
		Result:     result,
		Phrase:     fmt.Sprintf("Random calculation: %s equals %s", spoken, fixedDecimals(result, 4)),
	}
}

// randomBetween clamps both bounds to MaxRandomBound so the span never
// overflows, whatever the caller passes.
func randomBetween(rng Rand, min, max int) int {
	min = clampBound(min)
	max = clampBound(max)
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min)
}

func clampBound(v int) int {
	switch {
	case v < -MaxRandomBound:
		return -MaxRandomBound
	case v > MaxRandomBound:
		return MaxRandomBound
	default:
		return v
	}
}

func fixedDecimals(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatNumber(v)
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
