package domain

import (
	"fmt"
	"strings"
)

type Token string

const (
	TokenDecimal Token = "."

	TokenAdd      Token = "+"
	TokenSubtract Token = "-"
	TokenMultiply Token = "*"
	TokenDivide   Token = "/"

	TokenSin    Token = "sin"
	TokenCos    Token = "cos"
	TokenTan    Token = "tan"
	TokenLog    Token = "log"
	TokenSqrt   Token = "sqrt"
	TokenSquare Token = "square"

	TokenPi Token = "pi"
	TokenE  Token = "e"

	TokenMemoryClear    Token = "mc"
	TokenMemoryAdd      Token = "m+"
	TokenMemorySubtract Token = "m-"
	TokenMemoryRecall   Token = "mr"

	TokenClear  Token = "clear"
	TokenEquals Token = "equals"
	TokenRandom Token = "random"
)

type TokenKind int

const (
	KindUnknown TokenKind = iota
	KindDigit
	KindDecimal
	KindOperator
	KindUnary
	KindConstant
	KindMemory
	KindClear
	KindEquals
	KindRandom
)

func (t Token) Kind() TokenKind {
	switch t {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return KindDigit
	case TokenDecimal:
		return KindDecimal
	case TokenAdd, TokenSubtract, TokenMultiply, TokenDivide:
		return KindOperator
	case TokenSin, TokenCos, TokenTan, TokenLog, TokenSqrt, TokenSquare:
		return KindUnary
	case TokenPi, TokenE:
		return KindConstant
	case TokenMemoryClear, TokenMemoryAdd, TokenMemorySubtract, TokenMemoryRecall:
		return KindMemory
	case TokenClear:
		return KindClear
	case TokenEquals:
		return KindEquals
	case TokenRandom:
		return KindRandom
	default:
		return KindUnknown
	}
}

func (t Token) Valid() bool {
	return t.Kind() != KindUnknown
}

var tokenAliases = map[string]Token{
	"c":     TokenClear,
	"esc":   TokenClear,
	"=":     TokenEquals,
	"enter": TokenEquals,
	"×":     TokenMultiply,
	"x":     TokenMultiply,
	"÷":     TokenDivide,
	"−":     TokenSubtract,
	"2^":    TokenSquare,
	"x²":    TokenSquare,
	"x^2":   TokenSquare,
	"sq":    TokenSquare,
	"√":     TokenSqrt,
	"π":     TokenPi,
}

// ParseToken accepts canonical token names and the glyphs the UI prints.
func ParseToken(raw string) (Token, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownToken)
	}

	if token := Token(strings.ToLower(trimmed)); token.Valid() {
		return token, nil
	}
	if token, ok := tokenAliases[strings.ToLower(trimmed)]; ok {
		return token, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownToken, raw)
}

// ParseTokens splits each argument on whitespace so "2 + 3 =" and
// ["2", "+", "3", "="] parse the same. Multi-digit words like "12.5" are
// expanded into one token per character.
func ParseTokens(args []string) ([]Token, error) {
	tokens := make([]Token, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			if isNumberWord(field) {
				for _, r := range field {
					tokens = append(tokens, Token(string(r)))
				}
				continue
			}

			token, err := ParseToken(field)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		}
	}

	return tokens, nil
}

func isNumberWord(field string) bool {
	if len(field) < 2 {
		return false
	}
	for _, r := range field {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
