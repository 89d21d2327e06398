package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string { return &value }

func TestValidate(t *testing.T) {
	done := true
	tests := []struct {
		name    string
		input   interface{ Validate() error }
		wantErr bool
	}{
		{"login ok", LoginInput{Email: "ada@example.com", Password: "x"}, false},
		{"login missing email", LoginInput{Password: "x"}, true},
		{"login bad email", LoginInput{Email: "ada", Password: "x"}, true},
		{"login missing password", LoginInput{Email: "ada@example.com"}, true},
		{"register ok", RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret"}, false},
		{"register short password", RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "12345"}, true},
		{"register blank name", RegisterInput{Name: "  ", Email: "ada@example.com", Password: "secret"}, true},
		{"profile empty", ProfileUpdate{}, true},
		{"profile name only", ProfileUpdate{Name: "Ada L."}, false},
		{"profile bad email", ProfileUpdate{Email: "nope"}, true},
		{"reset ok", ResetPasswordInput{Email: "ada@example.com", Password: "longer"}, false},
		{"task ok", CreateTaskInput{Title: "Read chapter 3"}, false},
		{"task blank", CreateTaskInput{Title: " "}, true},
		{"task update empty", UpdateTaskInput{}, true},
		{"task update completed", UpdateTaskInput{Completed: &done}, false},
		{"task update blank title", UpdateTaskInput{Title: strPtr("")}, true},
		{"note text", NoteInput{Title: "Bio", Text: "cells"}, false},
		{"note file", NoteInput{Title: "Bio", FilePath: "bio.pdf", SummaryLength: SummaryLong}, false},
		{"note empty body", NoteInput{Title: "Bio"}, true},
		{"note bad length", NoteInput{Title: "Bio", Text: "x", SummaryLength: "huge"}, true},
		{"guide ok", CreateGuideInput{Topic: "Go", DurationDays: 7}, false},
		{"guide zero days", CreateGuideInput{Topic: "Go"}, true},
		{"guide too long", CreateGuideInput{Topic: "Go", DurationDays: MaxGuideDays + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStats_CompletionRate(t *testing.T) {
	assert.Equal(t, 0, Stats{}.CompletionRate())
	assert.Equal(t, 67, Stats{TotalTasks: 3, CompletedTasks: 2}.CompletionRate())
	assert.Equal(t, 100, Stats{TotalTasks: 4, CompletedTasks: 4}.CompletionRate())
}

func TestCountTasks(t *testing.T) {
	total, completed, pending := CountTasks([]Task{{Completed: true}, {}, {}})
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, pending)
}

func TestSettings_WithPreferencesKeepsTickInterval(t *testing.T) {
	base := DefaultSettings()
	edited := DefaultSettings()
	edited.APIURL = "https://desk.example.com/api"
	edited.AlertFullscreen = true
	edited.LaunchAtLogin = true
	edited.TickInterval = 10 * time.Millisecond

	merged := base.WithPreferences(edited)

	assert.Equal(t, "https://desk.example.com/api", merged.APIURL)
	assert.True(t, merged.AlertFullscreen)
	assert.True(t, merged.LaunchAtLogin)
	assert.Equal(t, time.Second, merged.TickInterval)
}
