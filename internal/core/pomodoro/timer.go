package pomodoro

import (
	"log/slog"
	"sync"
	"time"
)

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Logger       *slog.Logger
}

// Timer is the focus/break state machine. It counts down one second per
// tick while running and stops itself after every phase swap.
type Timer struct {
	mu      sync.Mutex
	options Config
	state   State
	cancel  Cancel
	// generation is bumped whenever a tick source is attached or detached so
	// callbacks from a cancelled source are ignored.
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates a Timer in the Idle-Focus state.
func New(options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Timer{
		options: options,
		state:   InitialState(),
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, ch)
	return ch
}

// Start begins the countdown. It is a no-op while running.
func (timer *Timer) Start() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed || timer.state.Running {
		return
	}
	timer.state.Running = true
	timer.attachLocked()
	timer.emitLocked(EventStarted, "")
}

// Pause freezes the countdown. It is a no-op while idle.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed || !timer.state.Running {
		return
	}
	timer.state.Running = false
	timer.detachLocked()
	timer.emitLocked(EventPaused, "")
}

// Reset stops the countdown and restores the full length of the current phase.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		return
	}
	timer.state.Running = false
	timer.detachLocked()
	timer.state.Remaining = timer.state.Phase.Seconds()
	timer.emitLocked(EventReset, "")
}

// Tick advances the countdown by one second. It does nothing while idle.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.tickLocked()
}

// Close detaches the tick source and closes observers. Control calls made
// after Close are ignored.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.closed = true
	timer.state.Running = false
	timer.detachLocked()
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the current state.
func (timer *Timer) Snapshot() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Phase returns the active phase.
func (timer *Timer) Phase() Phase {
	return timer.Snapshot().Phase
}

// Remaining returns the seconds left in the current phase.
func (timer *Timer) Remaining() int {
	return timer.Snapshot().Remaining
}

// Formatted returns the remaining time as MM:SS.
func (timer *Timer) Formatted() string {
	return timer.Snapshot().Formatted()
}

// Running reports whether the countdown is active.
func (timer *Timer) Running() bool {
	return timer.Snapshot().Running
}

// CompletedFocusSessions returns the number of finished focus phases.
func (timer *Timer) CompletedFocusSessions() int {
	return timer.Snapshot().CompletedFocusSessions
}

// CurrentSessionIndex returns the 1-based index of the current session.
func (timer *Timer) CurrentSessionIndex() int {
	return timer.Snapshot().CurrentSessionIndex
}

func (timer *Timer) attachLocked() {
	timer.detachLocked()
	generation := timer.generation
	timer.cancel = timer.options.Scheduler(timer.options.TickInterval, func() {
		timer.tickFrom(generation)
	})
}

func (timer *Timer) detachLocked() {
	if timer.cancel != nil {
		timer.cancel()
		timer.cancel = nil
	}
	timer.generation++
}

func (timer *Timer) tickFrom(generation uint64) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if generation != timer.generation {
		return
	}
	timer.tickLocked()
}

func (timer *Timer) tickLocked() {
	if timer.closed || !timer.state.Running || timer.state.Remaining <= 0 {
		return
	}

	timer.state.Remaining--
	if timer.state.Remaining > 0 {
		timer.emitLocked(EventTick, "")
		return
	}

	finished := timer.state.Phase
	timer.state.Running = false
	timer.detachLocked()
	if finished == PhaseFocus {
		timer.state.CompletedFocusSessions++
		timer.state.CurrentSessionIndex++
	}
	timer.state.Phase = finished.Next()
	timer.state.Remaining = timer.state.Phase.Seconds()

	timer.options.Logger.Info("phase complete",
		"finished", string(finished),
		"next", string(timer.state.Phase),
		"completed_sessions", timer.state.CompletedFocusSessions,
	)
	timer.emitLocked(EventPhaseComplete, finished)
}

func (timer *Timer) emitLocked(eventType EventType, finished Phase) {
	event := Event{
		Type:     eventType,
		State:    timer.state,
		Finished: finished,
		At:       time.Now(),
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
