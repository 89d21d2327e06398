package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/core/pomodoro"
	"studydesk/internal/core/pomodoro/pomodorotest"
)

func newTestModel(t *testing.T) (Model, *pomodoro.Timer, *pomodorotest.Scheduler) {
	t.Helper()
	scheduler := pomodorotest.NewScheduler()
	timer := pomodoro.New(pomodoro.Config{Scheduler: scheduler.Schedule})
	t.Cleanup(timer.Close)
	return New(timer, timer.Subscribe(4096)), timer, scheduler
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func press(m Model, keys string) Model {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return m
}

func space(m Model) Model {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	return m
}

func TestNew_RendersIdleFocus(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "session 1")
	assert.Contains(t, view, "paused")
}

func TestSpace_TogglesRunning(t *testing.T) {
	m, timer, _ := newTestModel(t)

	m = space(m)
	assert.True(t, timer.Running())
	assert.True(t, m.State().Running)

	m = space(m)
	assert.False(t, timer.Running())
	assert.False(t, m.State().Running)
}

func TestResetKey_RestoresPhase(t *testing.T) {
	m, timer, scheduler := newTestModel(t)

	m = space(m)
	scheduler.Advance(90)
	m = press(m, "r")

	assert.False(t, timer.Running())
	assert.Equal(t, 1500, m.State().Remaining)
}

func TestQuitKey_Quits(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestEvents_UpdateStateAndAnnouncePhaseChange(t *testing.T) {
	m, _, scheduler := newTestModel(t)

	m = space(m)
	scheduler.Advance(1500)

	// drain every queued event through the wait command
	for {
		cmd := waitForEvent(m.events)
		if len(m.events) == 0 {
			break
		}
		m, _ = update(m, cmd())
	}

	assert.Equal(t, pomodoro.PhaseBreak, m.State().Phase)
	assert.Equal(t, "05:00", m.State().Formatted())
	assert.Equal(t, 1, m.State().CompletedFocusSessions)
	assert.Equal(t, "Focus complete. Press space to start Break.", m.Status())
	assert.True(t, strings.Contains(m.View(), "session 2"))

	m = space(m)
	assert.Empty(t, m.Status())
}

func TestEvents_ClosedChannelQuits(t *testing.T) {
	m, timer, _ := newTestModel(t)
	timer.Close()

	m, cmd := update(m, waitForEvent(m.events)())

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWaitForEvent_NilChannel(t *testing.T) {
	assert.Nil(t, waitForEvent(nil))
}
