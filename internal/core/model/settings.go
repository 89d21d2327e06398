package model

import "time"

// DefaultAPIURL is used when neither settings nor environment name a backend.
const DefaultAPIURL = "http://localhost:5000/api"

// Settings defines editable user preferences.
type Settings struct {
	APIURL string

	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration

	AlertEnabled    bool
	AlertOpacity    float64
	AlertFullscreen bool

	LaunchAtLogin bool

	// TickInterval shortens the timer second for demos and manual testing.
	TickInterval time.Duration
}

// DefaultSettings returns default settings for studydesk.
func DefaultSettings() Settings {
	return Settings{
		APIURL:           DefaultAPIURL,
		IdlePauseEnabled: true,
		IdlePauseAfter:   5 * time.Minute,
		AlertEnabled:     true,
		AlertOpacity:     0.85,
		AlertFullscreen:  false,
		TickInterval:     time.Second,
	}
}

// WithPreferences returns settings with the fields the Preferences window
// edits copied from edited. TickInterval is left alone.
func (settings Settings) WithPreferences(edited Settings) Settings {
	settings.APIURL = edited.APIURL
	settings.IdlePauseEnabled = edited.IdlePauseEnabled
	settings.IdlePauseAfter = edited.IdlePauseAfter
	settings.AlertEnabled = edited.AlertEnabled
	settings.AlertOpacity = edited.AlertOpacity
	settings.AlertFullscreen = edited.AlertFullscreen
	settings.LaunchAtLogin = edited.LaunchAtLogin
	return settings
}

// ValidOpacity reports whether value is an accepted alert opacity.
func ValidOpacity(value float64) bool {
	return value >= 0.7 && value <= 0.95
}
