package pomodoro

import "time"

// Phase identifies which interval is active.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Nominal phase lengths in seconds.
const (
	FocusSeconds = 25 * 60
	BreakSeconds = 5 * 60
)

// Seconds returns the full length of the phase.
func (phase Phase) Seconds() int {
	if phase == PhaseBreak {
		return BreakSeconds
	}
	return FocusSeconds
}

// Next returns the phase that follows this one.
func (phase Phase) Next() Phase {
	if phase == PhaseBreak {
		return PhaseFocus
	}
	return PhaseBreak
}

// Label returns a display name.
func (phase Phase) Label() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Focus"
}

// EventType defines the type of timer event.
type EventType string

const (
	EventStarted       EventType = "started"
	EventPaused        EventType = "paused"
	EventReset         EventType = "reset"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents a timer update for observers.
type Event struct {
	Type  EventType
	State State
	// Finished is the phase that just ended. Only set for EventPhaseComplete.
	Finished Phase
	At       time.Time
}
