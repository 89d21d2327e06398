package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"studydesk/internal/core/model"
	"studydesk/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. STUDYDESK_API_URL.
const EnvPrefix = "STUDYDESK"

const (
	keyAPIURL       = "api_url"
	keyTickInterval = "tick_interval"
)

// FlagAPIURL is the command-line flag that overrides the backend URL.
const FlagAPIURL = "api-url"

// Load reads the saved settings and layers environment variables and
// command-line flags on top. Flags win over the environment, which wins
// over the settings file.
func Load(appName string, flags *pflag.FlagSet) (model.Settings, error) {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		return settings, err
	}
	return Overlay(settings, flags)
}

// Overlay applies environment and flag overrides to settings.
func Overlay(settings model.Settings, flags *pflag.FlagSet) (model.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetDefault(keyAPIURL, settings.APIURL)
	v.SetDefault(keyTickInterval, settings.TickInterval)
	if err := v.BindEnv(keyAPIURL); err != nil {
		return settings, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv(keyTickInterval); err != nil {
		return settings, fmt.Errorf("bind env: %w", err)
	}

	if flags != nil {
		if flag := flags.Lookup(FlagAPIURL); flag != nil && flag.Changed {
			if err := v.BindPFlag(keyAPIURL, flag); err != nil {
				return settings, fmt.Errorf("bind flag: %w", err)
			}
		}
	}

	if url := strings.TrimSpace(v.GetString(keyAPIURL)); url != "" {
		settings.APIURL = url
	}
	if interval := v.GetDuration(keyTickInterval); interval > 0 {
		settings.TickInterval = interval
	}
	return settings, nil
}
