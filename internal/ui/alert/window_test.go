package alert

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"studydesk/internal/core/pomodoro"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name     string
		finished pomodoro.Phase
		state    pomodoro.State
		want     Message
	}{
		{
			name:     "focus finished",
			finished: pomodoro.PhaseFocus,
			state:    pomodoro.State{Phase: pomodoro.PhaseBreak, Remaining: 300, CompletedFocusSessions: 1, CurrentSessionIndex: 2},
			want: Message{
				Title:      "Focus complete",
				Subtitle:   "Step away for 05:00.",
				Sessions:   "Completed focus sessions: 1",
				StartLabel: "Start break",
			},
		},
		{
			name:     "break finished",
			finished: pomodoro.PhaseBreak,
			state:    pomodoro.State{Phase: pomodoro.PhaseFocus, Remaining: 1500, CompletedFocusSessions: 3, CurrentSessionIndex: 4},
			want: Message{
				Title:      "Break complete",
				Subtitle:   "Ready for session 4? 25:00 of focus.",
				Sessions:   "Completed focus sessions: 3",
				StartLabel: "Start focus",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.finished, tt.state))
		})
	}
}

func TestWindow_StartAndLater(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	alert := New(app, Config{Opacity: 200})
	started, later := 0, 0
	alert.SetOnStart(func() { started++ })
	alert.SetOnLater(func() { later++ })

	alert.Show(pomodoro.PhaseFocus, pomodoro.State{Phase: pomodoro.PhaseBreak, Remaining: 300, CompletedFocusSessions: 1, CurrentSessionIndex: 2})
	assert.Equal(t, "Start break", alert.startButton.Text)
	assert.Equal(t, "Focus complete", alert.titleLabel.Text)

	test.Tap(alert.startButton)
	test.Tap(alert.laterButton)

	assert.Equal(t, 1, started)
	assert.Equal(t, 1, later)
}
