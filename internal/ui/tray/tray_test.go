package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/core/pomodoro"
)

type recordingApp struct {
	menus []*fyne.Menu
}

func (app *recordingApp) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *recordingApp) last() *fyne.Menu {
	return app.menus[len(app.menus)-1]
}

func labels(menu *fyne.Menu) []string {
	var out []string
	for _, item := range menu.Items {
		if item.IsSeparator {
			continue
		}
		out = append(out, item.Label)
	}
	return out
}

func TestNew_InstallsIdleMenu(t *testing.T) {
	app := &recordingApp{}

	New(app, Callbacks{})

	require.NotEmpty(t, app.menus)
	assert.Equal(t, []string{
		"Focus 25:00 (paused) · session 1",
		"Start Focus",
		"Reset",
		"Show timer",
		"Preferences",
		"Quit",
	}, labels(app.last()))
}

func TestSetState_UpdatesToggleAndStatus(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})

	manager.SetState(pomodoro.State{Phase: pomodoro.PhaseBreak, Remaining: 61, Running: true, CompletedFocusSessions: 1, CurrentSessionIndex: 2})

	got := labels(app.last())
	assert.Equal(t, "Break 01:01 (running) · session 2", got[0])
	assert.Equal(t, "Pause", got[1])
}

func TestSetUser_AddsSignedInEntry(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})

	manager.SetUser("Ada")
	assert.Contains(t, labels(app.last()), "Signed in as Ada")

	manager.SetUser("")
	assert.NotContains(t, labels(app.last()), "Signed in as Ada")
}

func TestMenu_InvokesCallbacks(t *testing.T) {
	var calls []string
	manager := New(&recordingApp{}, Callbacks{
		OnToggle:      func() { calls = append(calls, "toggle") },
		OnReset:       func() { calls = append(calls, "reset") },
		OnShow:        func() { calls = append(calls, "show") },
		OnPreferences: func() { calls = append(calls, "prefs") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})

	for _, item := range manager.Menu().Items {
		if item.Action != nil {
			item.Action()
		}
	}

	assert.Equal(t, []string{"toggle", "reset", "show", "prefs", "quit"}, calls)
}

func TestSetWaiting_MarksIdlePhaseUntilStarted(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})
	breakReady := pomodoro.State{Phase: pomodoro.PhaseBreak, Remaining: pomodoro.BreakSeconds, CompletedFocusSessions: 1, CurrentSessionIndex: 2}
	manager.SetState(breakReady)

	manager.SetWaiting(true)
	assert.Equal(t, "Break 05:00 (waiting) · session 2", labels(app.last())[0])

	manager.SetState(breakReady)
	assert.Equal(t, "Break 05:00 (waiting) · session 2", labels(app.last())[0])

	running := breakReady
	running.Running = true
	manager.SetState(running)
	assert.Equal(t, "Break 05:00 (running) · session 2", labels(app.last())[0])
}

func TestSetWaiting_IgnoredWhileRunning(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})
	manager.SetState(pomodoro.State{Phase: pomodoro.PhaseFocus, Remaining: 90, Running: true, CurrentSessionIndex: 1})

	manager.SetWaiting(true)

	assert.Equal(t, "Focus 01:30 (running) · session 1", labels(app.last())[0])
}
