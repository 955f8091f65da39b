package domain

import "strings"

// Calculator is the input state machine behind both calculator modes. It
// holds at most one pending binary operation: Operand is set iff Operator is.
type Calculator struct {
	Current  string
	Operator string
	Operand  string
	Memory   float64

	// fresh marks Current as a computed value that the next digit replaces.
	fresh bool
}

type Outcome struct {
	Phrases   []string
	Evaluated bool
	Ignored   bool
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Displayed is the raw value the display shows: Current, or "0" while
// waiting for input.
func (c *Calculator) Displayed() string {
	if c.Current == "" {
		return "0"
	}
	return c.Current
}

func (c *Calculator) InError() bool {
	return IsSentinel(c.Current)
}

func (c *Calculator) Display(digits int) string {
	return FormatDisplay(c.Current, digits)
}

func (c *Calculator) Formula(digits int) string {
	return FormulaText(formatPart(c.Operand, digits), c.Operator, formatPart(c.Current, digits))
}

func formatPart(value string, digits int) string {
	if value == "" {
		return ""
	}
	return FormatDisplay(value, digits)
}

// Press applies one token. Random calculations need a source of randomness
// and go through ApplyRandom instead; pressing TokenRandom here is ignored.
func (c *Calculator) Press(token Token) Outcome {
	outcome := Outcome{Phrases: []string{TokenPhrase(token)}}

	switch token.Kind() {
	case KindDigit, KindDecimal:
		c.input(token, &outcome)
	case KindOperator:
		c.operator(token, &outcome)
	case KindEquals:
		c.equals(&outcome)
	case KindClear:
		c.Clear()
	case KindUnary:
		c.unary(token, &outcome)
	case KindConstant:
		c.constant(token, &outcome)
	case KindMemory:
		c.memory(token, &outcome)
	default:
		outcome.Ignored = true
	}

	return outcome
}

func (c *Calculator) Clear() {
	c.Current = ""
	c.Operator = ""
	c.Operand = ""
	c.fresh = false
}

// ApplyRandom stores a generated calculation as the current value and drops
// any pending operation.
func (c *Calculator) ApplyRandom(calc RandomCalculation) Outcome {
	c.Current = calc.Value()
	c.Operator = ""
	c.Operand = ""
	c.fresh = true

	return Outcome{
		Phrases:   []string{TokenPhrase(TokenRandom), calc.Phrase},
		Evaluated: true,
	}
}

func (c *Calculator) input(token Token, outcome *Outcome) {
	if c.fresh || c.InError() {
		c.Current = ""
		c.fresh = false
	}

	if token == TokenDecimal && strings.Contains(c.Current, ".") {
		outcome.Ignored = true
		return
	}

	c.Current += string(token)
}

func (c *Calculator) operator(token Token, outcome *Outcome) {
	if c.InError() {
		outcome.Ignored = true
		return
	}

	switch {
	case c.Current != "":
		// The typed value becomes the left-hand side and any pending
		// operation is dropped.
		c.Operand = c.Current
	case c.Operator == "":
		c.Operand = c.Displayed()
	}

	c.Operator = string(token)
	c.Current = ""
	c.fresh = false
}

func (c *Calculator) equals(outcome *Outcome) {
	if c.Operator == "" || c.Operand == "" || c.InError() {
		return
	}

	c.settle(Evaluate(c.Operand, Token(c.Operator), c.Current), outcome)
}

// settle stores an evaluated result and ends the pending operation.
func (c *Calculator) settle(result string, outcome *Outcome) {
	c.Current = result
	c.Operator = ""
	c.Operand = ""
	c.fresh = true

	outcome.Evaluated = true
	outcome.Phrases = append(outcome.Phrases, ResultPhrase(result))
}

func (c *Calculator) unary(token Token, outcome *Outcome) {
	if c.InError() {
		outcome.Ignored = true
		return
	}

	result := ApplyUnary(token, c.Displayed())
	c.Current = result
	c.fresh = true

	outcome.Phrases = append(outcome.Phrases, ResultPhrase(result))
}

func (c *Calculator) constant(token Token, outcome *Outcome) {
	value, ok := ConstantValue(token)
	if !ok {
		outcome.Ignored = true
		return
	}

	if !c.InError() && isNonZero(c.Current) {
		// A constant after a number multiplies it: "2 π" reads as 2 × π.
		c.Operand = c.Current
		c.Operator = string(TokenMultiply)
	}

	c.Current = FormatNumber(value)
	c.fresh = true
}

func isNonZero(value string) bool {
	v, ok := ParseNumber(value)
	return ok && v != 0
}

func (c *Calculator) memory(token Token, outcome *Outcome) {
	switch token {
	case TokenMemoryClear:
		c.Memory = 0
		outcome.Phrases = append(outcome.Phrases, PhraseMemoryCleared)
	case TokenMemoryAdd:
		v, _ := ParseNumber(c.Displayed())
		c.Memory += v
		outcome.Phrases = append(outcome.Phrases, PhraseMemoryPlus)
	case TokenMemorySubtract:
		v, _ := ParseNumber(c.Displayed())
		c.Memory -= v
		outcome.Phrases = append(outcome.Phrases, PhraseMemoryMinus)
	case TokenMemoryRecall:
		c.Current = FormatNumber(c.Memory)
		c.fresh = true
		outcome.Phrases = append(outcome.Phrases, PhraseMemoryRecall)
	}
}
