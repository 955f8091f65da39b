package application

import "github.com/bnema/vcalc/internal/domain"

type Output struct {
	Display    string      `json:"display"`
	Formula    string      `json:"formula"`
	Current    string      `json:"current"`
	Operator   string      `json:"operator"`
	Operand    string      `json:"operand"`
	Memory     float64     `json:"memory"`
	Mode       domain.Mode `json:"mode"`
	Error      bool        `json:"error"`
	Evaluated  bool        `json:"evaluated"`
	Ignored    bool        `json:"ignored,omitempty"`
	Expression string      `json:"expression,omitempty"`
	Phrases    []string    `json:"phrases,omitempty"`
}

type SettingsView struct {
	RoundingDigits int         `json:"rounding_digits"`
	RandomMin      int         `json:"random_min"`
	RandomMax      int         `json:"random_max"`
	VoiceEnabled   bool        `json:"voice_enabled"`
	Mode           domain.Mode `json:"mode"`
}

func NewSettingsView(settings domain.Settings) SettingsView {
	return SettingsView{
		RoundingDigits: settings.RoundingDigits,
		RandomMin:      settings.RandomMin,
		RandomMax:      settings.RandomMax,
		VoiceEnabled:   settings.VoiceEnabled,
		Mode:           settings.Mode,
	}
}
