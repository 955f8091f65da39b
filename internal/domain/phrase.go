package domain

var tokenPhrases = map[Token]string{
	"0":                 "zero",
	"1":                 "one",
	"2":                 "two",
	"3":                 "three",
	"4":                 "four",
	"5":                 "five",
	"6":                 "six",
	"7":                 "seven",
	"8":                 "eight",
	"9":                 "nine",
	TokenDecimal:        "point",
	TokenAdd:            "plus",
	TokenSubtract:       "minus",
	TokenMultiply:       "times",
	TokenDivide:         "divided by",
	TokenEquals:         "equals",
	TokenClear:          "clear",
	TokenSin:            "sine",
	TokenCos:            "cosine",
	TokenTan:            "tangent",
	TokenLog:            "logarithm",
	TokenSqrt:           "square root",
	TokenSquare:         "squared",
	TokenPi:             "pi",
	TokenE:              "e",
	TokenMemoryClear:    "memory clear",
	TokenMemoryAdd:      "memory plus",
	TokenMemorySubtract: "memory minus",
	TokenMemoryRecall:   "memory recall",
	TokenRandom:         "random calculation",
}

// TokenPhrase is what the voice says when a token is pressed. Unknown tokens
// are spoken as-is.
func TokenPhrase(token Token) string {
	if phrase, ok := tokenPhrases[token]; ok {
		return phrase
	}
	return string(token)
}

const (
	PhraseMemoryCleared = "Memory cleared"
	PhraseMemoryPlus    = "Memory plus"
	PhraseMemoryMinus   = "Memory minus"
	PhraseMemoryRecall  = "Memory recall"
	PhraseError         = "Error"
	PhraseVoiceTest     = "Testing calculator voice"
)

// ResultPhrase is what the voice says after a value has been computed.
func ResultPhrase(value string) string {
	if value == SentinelError {
		return PhraseError
	}
	return SpeakableNumber(value)
}
