package domain

import "strings"

// FormatDisplay renders a stored value for the display: thousands separators
// and at most digits fraction digits. Text the user is still typing ("3.",
// "0.50") keeps its shape unless it has more fraction digits than allowed.
// Sentinels and non-numeric text pass through unchanged.
func FormatDisplay(value string, digits int) string {
	if value == "" {
		return "0"
	}
	if value == "." {
		return "0."
	}
	if IsSentinel(value) {
		return value
	}

	if _, ok := ParseNumber(value); !ok {
		return value
	}

	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	sign := ""
	switch cleaned[0] {
	case '-':
		sign = "-"
		cleaned = cleaned[1:]
	case '+':
		cleaned = cleaned[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(cleaned, ".")
	if digits >= 0 && len(fracPart) > digits {
		intPart, fracPart = roundHalfUp(intPart, fracPart, digits)
		fracPart = strings.TrimRight(fracPart, "0")
		hasDot = fracPart != ""
		if strings.Trim(intPart, "0") == "" && fracPart == "" {
			sign = ""
		}
	}
	if intPart == "" {
		intPart = "0"
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(groupThousands(intPart))
	if hasDot {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}

// roundHalfUp rounds the unsigned decimal intPart.fracPart to digits
// fraction digits on the text itself, so long integers keep every digit and
// halves round away from zero.
func roundHalfUp(intPart, fracPart string, digits int) (string, string) {
	kept := []byte(intPart + fracPart[:digits])
	if fracPart[digits] >= '5' {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i >= 0 {
			kept[i]++
		} else {
			kept = append([]byte{'1'}, kept...)
		}
	}

	split := len(kept) - digits
	return strings.TrimLeft(string(kept[:split]), "0"), string(kept[split:])
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// OperatorGlyph maps an operator tag to the symbol shown in the formula line.
func OperatorGlyph(operator string) string {
	switch operator {
	case "*":
		return "×"
	case "/":
		return "÷"
	case "-":
		return "−"
	case "2^":
		return "²"
	default:
		return operator
	}
}

// FormulaText joins operand, operator glyph and current with single spaces,
// skipping empty parts. An empty formula reads "0".
func FormulaText(operand, operator, current string) string {
	parts := make([]string, 0, 3)
	if operand != "" {
		parts = append(parts, operand)
	}
	if operator != "" {
		parts = append(parts, OperatorGlyph(operator))
	}
	if current != "" {
		parts = append(parts, current)
	}

	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " ")
}

// SpeakableNumber drops thousands separators so speech engines read the
// number as one value.
func SpeakableNumber(value string) string {
	return strings.ReplaceAll(value, ",", "")
}
