package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/core/model"
)

func TestWindow_SaveAppliesEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved *model.Settings
	prefs := New(app, model.DefaultSettings(), func(settings model.Settings) {
		saved = &settings
	})

	prefs.apiURL.SetText(" https://desk.example.com/api ")
	prefs.idleAfter.SetText("10")
	prefs.idleCheck.SetChecked(false)
	prefs.fullscreen.SetChecked(true)
	prefs.autostart.SetChecked(true)
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.Equal(t, "https://desk.example.com/api", saved.APIURL)
	assert.Equal(t, 10*time.Minute, saved.IdlePauseAfter)
	assert.False(t, saved.IdlePauseEnabled)
	assert.True(t, saved.AlertFullscreen)
	assert.True(t, saved.LaunchAtLogin)
	assert.Equal(t, *saved, prefs.Settings())
}

func TestWindow_SaveKeepsValuesForInvalidInput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	defaults := model.DefaultSettings()
	prefs := New(app, defaults, nil)

	prefs.apiURL.SetText("   ")
	prefs.idleAfter.SetText("soon")
	prefs.handleSave()

	assert.Equal(t, defaults.APIURL, prefs.Settings().APIURL)
	assert.Equal(t, defaults.IdlePauseAfter, prefs.Settings().IdlePauseAfter)
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"5", 5, true},
		{" 12 ", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePositiveInt(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}
