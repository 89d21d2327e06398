package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/core/model"
	"studydesk/internal/storage"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagAPIURL, "", "backend url")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestOverlay_Precedence(t *testing.T) {
	base := model.DefaultSettings()
	base.APIURL = "http://file.example/api"

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "settings file", want: "http://file.example/api"},
		{name: "environment", env: "http://env.example/api", want: "http://env.example/api"},
		{name: "flag beats environment", env: "http://env.example/api", args: []string{"--api-url", "http://flag.example/api"}, want: "http://flag.example/api"},
		{name: "blank environment ignored", env: "   ", want: "http://file.example/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STUDYDESK_API_URL", tt.env)

			settings, err := Overlay(base, newFlags(t, tt.args...))

			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.APIURL)
		})
	}
}

func TestOverlay_TickIntervalFromEnv(t *testing.T) {
	t.Setenv("STUDYDESK_TICK_INTERVAL", "10ms")

	settings, err := Overlay(model.DefaultSettings(), nil)

	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, settings.TickInterval)
}

func TestLoad_ReadsSettingsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("STUDYDESK_API_URL", "")

	saved := model.DefaultSettings()
	saved.APIURL = "https://saved.example/api"
	require.NoError(t, storage.SaveSettings("StudyDesk", saved))

	settings, err := Load("StudyDesk", newFlags(t))

	require.NoError(t, err)
	assert.Equal(t, "https://saved.example/api", settings.APIURL)
}

func TestLoad_OverridesNotPersistedByPreferences(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("STUDYDESK_API_URL", "http://staging.example/api")
	t.Setenv("STUDYDESK_TICK_INTERVAL", "10ms")

	running, err := Load("StudyDesk", newFlags(t))
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, running.TickInterval)

	stored, err := storage.LoadSettings("StudyDesk")
	require.NoError(t, err)
	stored.AlertFullscreen = true
	_, err = storage.UpdatePreferences("StudyDesk", stored)
	require.NoError(t, err)

	t.Setenv("STUDYDESK_API_URL", "")
	t.Setenv("STUDYDESK_TICK_INTERVAL", "")

	reloaded, err := Load("StudyDesk", newFlags(t))
	require.NoError(t, err)
	assert.True(t, reloaded.AlertFullscreen)
	assert.Equal(t, time.Second, reloaded.TickInterval)
	assert.Equal(t, model.DefaultAPIURL, reloaded.APIURL)
}
