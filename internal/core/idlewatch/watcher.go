package idlewatch

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"studydesk/internal/core/pomodoro"
	"studydesk/internal/platform"
)

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Timer is the part of pomodoro.Timer the watcher drives.
type Timer interface {
	Snapshot() pomodoro.State
	Pause()
}

// Config contains runtime options for Watcher.
type Config struct {
	Enabled       bool
	After         time.Duration
	CheckInterval time.Duration
	Scheduler     pomodoro.Scheduler
	Logger        *slog.Logger
	// OnIdlePause is called after the watcher paused a running focus phase.
	OnIdlePause func(idle time.Duration)
}

// Watcher pauses a running focus phase once the user has been idle long enough.
type Watcher struct {
	mu          sync.Mutex
	config      Config
	timer       Timer
	checker     IdleChecker
	cancel      pomodoro.Cancel
	unsupported bool
}

// New creates a Watcher. It does nothing until Start is called.
func New(timer Timer, checker IdleChecker, config Config) *Watcher {
	return &Watcher{
		config:  normalize(config),
		timer:   timer,
		checker: checker,
	}
}

// Start begins polling. It is a no-op if already started.
func (watcher *Watcher) Start() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.cancel != nil {
		return
	}
	watcher.cancel = watcher.config.Scheduler(watcher.config.CheckInterval, watcher.Check)
}

// Stop ends polling.
func (watcher *Watcher) Stop() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.cancel != nil {
		watcher.cancel()
		watcher.cancel = nil
	}
}

// UpdateConfig replaces enablement and threshold. A running poll keeps its interval.
func (watcher *Watcher) UpdateConfig(enabled bool, after time.Duration) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.config.Enabled = enabled
	if after > 0 {
		watcher.config.After = after
	}
}

// Check polls the idle checker once.
func (watcher *Watcher) Check() {
	watcher.mu.Lock()
	if !watcher.config.Enabled || watcher.unsupported || watcher.checker == nil {
		watcher.mu.Unlock()
		return
	}
	config := watcher.config
	watcher.mu.Unlock()

	state := watcher.timer.Snapshot()
	if !state.Running || state.Phase != pomodoro.PhaseFocus {
		return
	}

	idle, err := watcher.checker.IdleDuration()
	if err != nil {
		if errors.Is(err, platform.ErrIdleUnsupported) {
			watcher.mu.Lock()
			watcher.unsupported = true
			watcher.mu.Unlock()
			config.Logger.Warn("idle detection disabled", "error", err)
			return
		}
		config.Logger.Debug("idle check failed", "error", err)
		return
	}
	if idle < config.After {
		return
	}

	watcher.timer.Pause()
	config.Logger.Info("focus paused for inactivity", "idle", idle.Round(time.Second))
	if config.OnIdlePause != nil {
		config.OnIdlePause(idle)
	}
}

func normalize(config Config) Config {
	if config.After <= 0 {
		config.After = 5 * time.Minute
	}
	if config.CheckInterval <= 0 {
		config.CheckInterval = 5 * time.Second
	}
	if config.Scheduler == nil {
		config.Scheduler = pomodoro.TickerScheduler
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return config
}
