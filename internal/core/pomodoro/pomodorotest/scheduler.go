// Package pomodorotest provides a manually driven Scheduler for tests.
package pomodorotest

import (
	"sync"
	"time"

	"studydesk/internal/core/pomodoro"
)

// Source is one tick source attached through a Scheduler.
type Source struct {
	Interval  time.Duration
	callback  func()
	cancelled bool
}

// Fire invokes the callback regardless of cancellation, as a late tick
// from a real ticker would.
func (source *Source) Fire() {
	source.callback()
}

// Cancelled reports whether the source was detached.
func (source *Source) Cancelled() bool {
	return source.cancelled
}

// Scheduler records attached sources and fires them on demand.
type Scheduler struct {
	mu      sync.Mutex
	sources []*Source
}

// NewScheduler returns an empty manual scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule satisfies pomodoro.Scheduler.
func (scheduler *Scheduler) Schedule(interval time.Duration, callback func()) pomodoro.Cancel {
	source := &Source{Interval: interval, callback: callback}
	scheduler.mu.Lock()
	scheduler.sources = append(scheduler.sources, source)
	scheduler.mu.Unlock()

	return func() {
		scheduler.mu.Lock()
		source.cancelled = true
		scheduler.mu.Unlock()
	}
}

// Sources returns every source ever attached.
func (scheduler *Scheduler) Sources() []*Source {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return append([]*Source(nil), scheduler.sources...)
}

// Active returns the sources that have not been cancelled.
func (scheduler *Scheduler) Active() []*Source {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var active []*Source
	for _, source := range scheduler.sources {
		if !source.cancelled {
			active = append(active, source)
		}
	}
	return active
}

// Advance simulates n elapsed intervals by firing every active source.
func (scheduler *Scheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, source := range scheduler.Active() {
			source.Fire()
		}
	}
}
