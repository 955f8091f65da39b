package application

import "github.com/bnema/vcalc/internal/domain"

// SettingsUpdate changes only the fields that are set.
type SettingsUpdate struct {
	RoundingDigits *int
	RandomMin      *int
	RandomMax      *int
	VoiceEnabled   *bool
	Mode           *domain.Mode
}

func (u SettingsUpdate) Empty() bool {
	return u.RoundingDigits == nil &&
		u.RandomMin == nil &&
		u.RandomMax == nil &&
		u.VoiceEnabled == nil &&
		u.Mode == nil
}

func (u SettingsUpdate) apply(settings domain.Settings) domain.Settings {
	if u.RoundingDigits != nil {
		settings.RoundingDigits = *u.RoundingDigits
	}
	if u.RandomMin != nil {
		settings.RandomMin = *u.RandomMin
	}
	if u.RandomMax != nil {
		settings.RandomMax = *u.RandomMax
	}
	if u.VoiceEnabled != nil {
		settings.VoiceEnabled = *u.VoiceEnabled
	}
	if u.Mode != nil {
		settings.Mode = *u.Mode
	}

	return settings
}
