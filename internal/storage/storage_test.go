package storage

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/core/model"
	"studydesk/internal/session"
)

const testApp = "StudyDesk"

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	configDir, err := ConfigDir(testApp)
	require.NoError(t, err)
	return configDir
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	useTempConfig(t)

	settings, err := LoadSettings(testApp)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettings_RoundTrip(t *testing.T) {
	useTempConfig(t)
	settings := model.DefaultSettings()
	settings.APIURL = "https://desk.example.com/api"
	settings.IdlePauseEnabled = false
	settings.IdlePauseAfter = 12 * time.Minute
	settings.AlertOpacity = 0.9
	settings.AlertFullscreen = true
	settings.LaunchAtLogin = true

	require.NoError(t, SaveSettings(testApp, settings))
	loaded, err := LoadSettings(testApp)

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettings_IgnoresOutOfRangeValues(t *testing.T) {
	dir := useTempConfig(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw := "api_url: \"  \"\nidle_pause_minutes: -4\nalert_opacity: 0.2\ntick_interval_ms: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(raw), 0o644))

	settings, err := LoadSettings(testApp)

	require.NoError(t, err)
	defaults := model.DefaultSettings()
	assert.Equal(t, defaults.APIURL, settings.APIURL)
	assert.Equal(t, defaults.IdlePauseAfter, settings.IdlePauseAfter)
	assert.Equal(t, defaults.AlertOpacity, settings.AlertOpacity)
	assert.True(t, settings.IdlePauseEnabled, "unset booleans keep defaults")
	assert.Equal(t, 50*time.Millisecond, settings.TickInterval)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	dir := useTempConfig(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("api_url: ["), 0o644))

	settings, err := LoadSettings(testApp)

	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSessionFile_RoundTrip(t *testing.T) {
	dir := useTempConfig(t)
	file := NewSessionFile(testApp)

	empty, err := file.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, empty.User)

	record := session.Record{
		User: &model.User{ID: "u1", Name: "Ada", Email: "ada@example.com", AuthProvider: model.AuthGoogle},
		Cookies: []*http.Cookie{
			{Name: "token", Value: "abc", Path: "/", HttpOnly: true},
			{Name: "stale", Value: "old", Expires: time.Now().Add(-time.Hour)},
		},
	}
	require.NoError(t, file.SaveSession(record))

	info, err := os.Stat(filepath.Join(dir, sessionFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := file.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "Ada", loaded.User.Name)
	assert.Equal(t, model.AuthGoogle, loaded.User.AuthProvider)
	require.Len(t, loaded.Cookies, 1, "expired cookies are dropped")
	assert.Equal(t, "abc", loaded.Cookies[0].Value)
	assert.True(t, loaded.Cookies[0].HttpOnly)

	require.NoError(t, file.ClearSession())
	require.NoError(t, file.ClearSession())
	cleared, err := file.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, cleared.User)
}

func TestSessionFile_BacksStore(t *testing.T) {
	useTempConfig(t)

	store, err := session.NewStore(NewSessionFile(testApp), nil)
	require.NoError(t, err)
	require.NoError(t, store.SetUser(model.User{ID: "u1", Name: "Ada"}, nil))

	reopened, err := session.NewStore(NewSessionFile(testApp), nil)
	require.NoError(t, err)
	require.True(t, reopened.LoggedIn())
	assert.Equal(t, "Ada", reopened.User().Name)
}

func TestUpdatePreferences_KeepsStoredTickInterval(t *testing.T) {
	useTempConfig(t)
	edited := model.DefaultSettings()
	edited.AlertOpacity = 0.75
	edited.TickInterval = 10 * time.Millisecond

	saved, err := UpdatePreferences(testApp, edited)
	require.NoError(t, err)
	assert.Equal(t, time.Second, saved.TickInterval)

	loaded, err := LoadSettings(testApp)
	require.NoError(t, err)
	assert.Equal(t, 0.75, loaded.AlertOpacity)
	assert.Equal(t, time.Second, loaded.TickInterval)
}
