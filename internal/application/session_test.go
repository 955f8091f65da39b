package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tomlrepo "github.com/bnema/vcalc/internal/adapters/repo/toml"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/bnema/vcalc/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func quietSettings() domain.Settings {
	settings := domain.DefaultSettings()
	settings.VoiceEnabled = false
	return settings
}

type fixedRand struct {
	ints []int
}

func (r *fixedRand) IntN(int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *fixedRand) Float64() float64 {
	return 0.5
}

func tokens(t *testing.T, raw ...string) []domain.Token {
	t.Helper()

	parsed, err := domain.ParseTokens(raw)
	require.NoError(t, err)
	return parsed
}

func TestSessionPressAllComputesWithoutSpeakingWhenVoiceDisabled(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	speaker := mocks.NewMockSpeaker(t)
	repo.EXPECT().Load(mockAnyContext()).Return(quietSettings(), nil)

	session, err := NewSession(context.Background(), repo, speaker)
	require.NoError(t, err)

	out, err := session.PressAll(context.Background(), tokens(t, "1200 + 34.5 ="))
	require.NoError(t, err)

	assert.Equal(t, "1,234.5", out.Display)
	assert.Equal(t, "1,234.5", out.Formula)
	assert.Equal(t, "1234.5", out.Current)
	assert.True(t, out.Evaluated)
	assert.False(t, out.Error)
	assert.Equal(t, domain.ModeSimple, out.Mode)
}

func TestSessionPressSpeaksTokenAndResult(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	speaker := mocks.NewMockSpeaker(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)

	var spoken []string
	speaker.EXPECT().Speak(mockAnyContext(), mock.AnythingOfType("string")).
		Run(func(_ context.Context, text string) { spoken = append(spoken, text) }).
		Return(nil)

	session, err := NewSession(context.Background(), repo, speaker)
	require.NoError(t, err)

	_, err = session.PressAll(context.Background(), tokens(t, "999 + 1 ="))
	require.NoError(t, err)

	assert.Equal(t, []string{"nine", "nine", "nine", "plus", "one", "equals", "1000"}, spoken)
}

func TestSessionSpeakerFailureDoesNotFailPress(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	speaker := mocks.NewMockSpeaker(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)
	speaker.EXPECT().Speak(mockAnyContext(), "memory clear").Return(errors.New("no audio device")).Once()

	session, err := NewSession(context.Background(), repo, speaker)
	require.NoError(t, err)

	out, err := session.Press(context.Background(), domain.TokenMemoryClear)
	require.NoError(t, err)
	assert.Equal(t, []string{"memory clear", domain.PhraseMemoryCleared}, out.Phrases)
}

func TestSessionPressRejectsUnknownToken(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(quietSettings(), nil)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	_, err = session.Press(context.Background(), domain.Token("%"))
	assert.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestSessionRandomUsesModeAndBounds(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	settings := quietSettings()
	settings.RandomMin = 100
	settings.RandomMax = 200
	repo.EXPECT().Load(mockAnyContext()).Return(settings, nil)

	session, err := NewSession(context.Background(), repo, nil, WithRand(&fixedRand{ints: []int{20, 30, 2}}))
	require.NoError(t, err)

	_, err = session.PressAll(context.Background(), tokens(t, "5 +"))
	require.NoError(t, err)

	out, err := session.Press(context.Background(), domain.TokenRandom)
	require.NoError(t, err)

	assert.Equal(t, "120 × 130", out.Expression)
	assert.Equal(t, "15600", out.Current)
	assert.Equal(t, "15,600", out.Display)
	assert.Empty(t, out.Operator)
	assert.Empty(t, out.Operand)
	assert.True(t, out.Evaluated)
	assert.Equal(t, []string{"random calculation", "Random calculation: 120 times 130 equals 15600.00"}, out.Phrases)
}

func TestSessionDisplayUsesRoundingDigits(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	settings := quietSettings()
	settings.RoundingDigits = 2
	repo.EXPECT().Load(mockAnyContext()).Return(settings, nil)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	out, err := session.PressAll(context.Background(), tokens(t, "2 / 3 ="))
	require.NoError(t, err)

	assert.Equal(t, "0.67", out.Display)
	assert.Equal(t, "0.6666666666666666", out.Current)
}

func TestSessionFallsBackToDefaultsForInvalidStoredSettings(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.Settings{RoundingDigits: 99, Mode: domain.ModeSimple}, nil)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), session.Settings())
}

func TestSessionLoadErrorFailsConstruction(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.Settings{}, errors.New("disk on fire"))

	_, err := NewSession(context.Background(), repo, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "load settings: disk on fire")
}

func TestSessionUpdateSettingsValidatesAndPersists(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)

	digits := 6
	voice := false
	want := domain.DefaultSettings()
	want.RoundingDigits = 6
	want.VoiceEnabled = false
	repo.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	got, err := session.UpdateSettings(context.Background(), SettingsUpdate{RoundingDigits: &digits, VoiceEnabled: &voice})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, session.Settings())
}

func TestSessionUpdateSettingsRejectsInvalidWithoutSaving(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	randomMin := 5000
	_, err = session.UpdateSettings(context.Background(), SettingsUpdate{RandomMin: &randomMin})
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.Equal(t, domain.DefaultSettings(), session.Settings())
}

func TestSessionUpdateSettingsKeepsOldValuesWhenSaveFails(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)
	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(errors.New("read-only file system"))

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	_, err = session.SetMode(context.Background(), domain.ModeScientific)
	require.Error(t, err)
	assert.ErrorContains(t, err, "save settings: read-only file system")
	assert.Equal(t, domain.ModeSimple, session.Settings().Mode)
}

func TestSessionReloadSettings(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	changed := quietSettings()
	changed.RoundingDigits = 1
	repo.EXPECT().Load(mockAnyContext()).Return(quietSettings(), nil).Once()
	repo.EXPECT().Load(mockAnyContext()).Return(changed, nil).Once()

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)
	_, err = session.PressAll(context.Background(), tokens(t, "1.26"))
	require.NoError(t, err)

	got, err := session.ReloadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, changed, got)
	assert.Equal(t, "1.3", session.Snapshot().Display)
}

func TestSessionSpeakWithoutSpeaker(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.DefaultSettings(), nil)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, session.Speak(context.Background(), domain.PhraseVoiceTest), ErrNoSpeaker)
}

func TestSessionPersistsSettingsThroughTOMLRepository(t *testing.T) {
	config := viper.New()
	config.Set("settings.path", filepath.Join(t.TempDir(), "settings.toml"))
	repo, err := tomlrepo.NewRepository(config)
	require.NoError(t, err)

	session, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), session.Settings())

	_, err = session.SetMode(context.Background(), domain.ModeScientific)
	require.NoError(t, err)

	reopened, err := NewSession(context.Background(), repo, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeScientific, reopened.Settings().Mode)
	assert.True(t, reopened.Settings().VoiceEnabled)
}

func TestSessionModeOverrideIsNotPersisted(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(quietSettings(), nil)

	session, err := NewSession(context.Background(), repo, nil, WithMode(domain.ModeScientific))
	require.NoError(t, err)
	assert.Equal(t, domain.ModeScientific, session.Settings().Mode)
	assert.Equal(t, domain.ModeScientific, session.Snapshot().Mode)

	_, err = NewSession(context.Background(), repo, nil, WithMode("graphing"))
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}
