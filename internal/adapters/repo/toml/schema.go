package toml

import (
	"fmt"

	"github.com/bnema/vcalc/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	Calculator calculatorSchema `toml:"calculator"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Pointer fields tell a missing key apart from a zero value so partial files
// fall back to defaults per key.
type calculatorSchema struct {
	RoundingDigits *int   `toml:"rounding_digits,omitempty"`
	RandomMin      *int   `toml:"random_min,omitempty"`
	RandomMax      *int   `toml:"random_max,omitempty"`
	VoiceEnabled   *bool  `toml:"voice_enabled,omitempty"`
	Mode           string `toml:"mode,omitempty"`
}

func toSchema(settings domain.Settings) calculatorSchema {
	return calculatorSchema{
		RoundingDigits: &settings.RoundingDigits,
		RandomMin:      &settings.RandomMin,
		RandomMax:      &settings.RandomMax,
		VoiceEnabled:   &settings.VoiceEnabled,
		Mode:           string(settings.Mode),
	}
}

func fromSchema(schema calculatorSchema) domain.Settings {
	settings := domain.DefaultSettings()

	if schema.RoundingDigits != nil {
		settings.RoundingDigits = *schema.RoundingDigits
	}
	if schema.RandomMin != nil {
		settings.RandomMin = *schema.RandomMin
	}
	if schema.RandomMax != nil {
		settings.RandomMax = *schema.RandomMax
	}
	if schema.VoiceEnabled != nil {
		settings.VoiceEnabled = *schema.VoiceEnabled
	}
	if schema.Mode != "" {
		settings.Mode = domain.Mode(schema.Mode)
	}

	return settings
}
