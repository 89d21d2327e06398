package pomodoro

import "fmt"

// State is a point-in-time copy of the timer.
type State struct {
	Phase                  Phase
	Remaining              int
	Running                bool
	CompletedFocusSessions int
	CurrentSessionIndex    int
}

// InitialState is the state of a freshly created timer.
func InitialState() State {
	return State{
		Phase:               PhaseFocus,
		Remaining:           FocusSeconds,
		CurrentSessionIndex: 1,
	}
}

// Formatted renders the remaining time as MM:SS.
func (state State) Formatted() string {
	return Format(state.Remaining)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (state State) Progress() float64 {
	total := state.Phase.Seconds()
	if total <= 0 {
		return 1
	}
	progress := float64(total-state.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Name returns the machine state, e.g. "Running-Focus".
func (state State) Name() string {
	mode := "Idle"
	if state.Running {
		mode = "Running"
	}
	return fmt.Sprintf("%s-%s", mode, state.Phase.Label())
}

// Format renders seconds as MM:SS with both fields zero-padded.
// Negative values render as 00:00.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
