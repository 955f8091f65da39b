package domain

import "fmt"

type Mode string

const (
	ModeSimple     Mode = "simple"
	ModeScientific Mode = "scientific"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeSimple, ModeScientific:
		return true
	default:
		return false
	}
}

func ParseMode(raw string) (Mode, error) {
	mode := Mode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
	return mode, nil
}

const (
	MaxRoundingDigits = 15

	// MaxRandomBound keeps RandomMax-RandomMin within a 32-bit int.
	MaxRandomBound = 1_000_000_000
)

type Settings struct {
	RoundingDigits int
	RandomMin      int
	RandomMax      int
	VoiceEnabled   bool
	Mode           Mode
}

func DefaultSettings() Settings {
	return Settings{
		RoundingDigits: 4,
		RandomMin:      0,
		RandomMax:      1000,
		VoiceEnabled:   true,
		Mode:           ModeSimple,
	}
}

func (s Settings) Validate() error {
	if s.RoundingDigits < 0 || s.RoundingDigits > MaxRoundingDigits {
		return fmt.Errorf("%w: rounding digits %d out of range 0..%d", ErrInvalidSettings, s.RoundingDigits, MaxRoundingDigits)
	}
	if s.RandomMin < -MaxRandomBound || s.RandomMax > MaxRandomBound {
		return fmt.Errorf("%w: random bounds %d..%d outside -%d..%d", ErrInvalidSettings, s.RandomMin, s.RandomMax, MaxRandomBound, MaxRandomBound)
	}
	if s.RandomMin > s.RandomMax {
		return fmt.Errorf("%w: random min %d is greater than random max %d", ErrInvalidSettings, s.RandomMin, s.RandomMax)
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidSettings, s.Mode)
	}

	return nil
}
