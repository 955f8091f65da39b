package cmd

import (
	"errors"
	"fmt"
	"strings"

	tomlrepo "github.com/bnema/vcalc/internal/adapters/repo/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "VCALC"

	keyLogLevel   = "log.level"
	keyLogFile    = "log.file"
	keyLogJournal = "log.journal"
	keyVoiceCmd   = "voice.command"
	keyVoiceName  = "voice.name"
	keyVoiceRate  = "voice.rate"

	// Roughly 1.1 times the usual 175 words per minute of espeak and say.
	defaultVoiceRate = 192
)

// loadConfig reads config.toml from configFile or the default directory.
// A missing default file is fine; a missing explicit one is not.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogJournal, false)
	v.SetDefault(keyVoiceRate, defaultVoiceRate)

	for key, flag := range map[string]string{
		keyLogLevel:              "log-level",
		keyLogFile:               "log-file",
		tomlrepo.SettingsPathKey: "settings",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind %s flag: %w", flag, err)
			}
		}
	}

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		dir, err := tomlrepo.DefaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}
