package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"studydesk/internal/core/pomodoro"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

var _ MenuSetter = desktop.App(nil)

// Manager handles system tray state.
type Manager struct {
	app        MenuSetter
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	callbacks  Callbacks
	state      pomodoro.State
	waiting    bool
	userLabel  string
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     pomodoro.InitialState(),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.SetState(manager.state)
	return manager
}

// SetState mirrors the timer in the menu. A waiting mark survives only
// while the timer stays idle in the same phase.
func (manager *Manager) SetState(state pomodoro.State) {
	if state.Running || state.Phase != manager.state.Phase {
		manager.waiting = false
	}
	manager.state = state
	manager.statusItem.Label = manager.statusLine()
	if state.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = fmt.Sprintf("Start %s", state.Phase.Label())
	}
	manager.refreshMenu()
}

// SetWaiting marks the idle phase as postponed by the user.
func (manager *Manager) SetWaiting(waiting bool) {
	manager.waiting = waiting && !manager.state.Running
	manager.statusItem.Label = manager.statusLine()
	manager.refreshMenu()
}

// SetUser shows who is signed in. An empty name hides the entry.
func (manager *Manager) SetUser(name string) {
	manager.userLabel = name
	manager.refreshMenu()
}

// Menu returns the menu currently installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	items := []*fyne.MenuItem{manager.statusItem}
	if manager.userLabel != "" {
		user := fyne.NewMenuItem("Signed in as "+manager.userLabel, nil)
		user.Disabled = true
		items = append(items, user)
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
	)
	// fyne appends its own Quit item; ours stops the timer first.
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true
	items = append(items, quit)
	return fyne.NewMenu("studydesk", items...)
}

// StatusLine renders the tray status, e.g. "Focus 24:59 (running)".
func StatusLine(state pomodoro.State) string {
	mode := "paused"
	if state.Running {
		mode = "running"
	}
	return fmt.Sprintf("%s %s (%s) · session %d", state.Phase.Label(), state.Formatted(), mode, state.CurrentSessionIndex)
}

func (manager *Manager) statusLine() string {
	if manager.waiting {
		state := manager.state
		return fmt.Sprintf("%s %s (waiting) · session %d", state.Phase.Label(), state.Formatted(), state.CurrentSessionIndex)
	}
	return StatusLine(manager.state)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
