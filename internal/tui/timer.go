package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studydesk/internal/core/pomodoro"
)

// Controller is the part of pomodoro.Timer the terminal view drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Snapshot() pomodoro.State
}

// eventMsg carries one timer event into the update loop.
type eventMsg struct {
	event pomodoro.Event
	ok    bool
}

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Help, k.Quit},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	clockStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
)

const maxBarWidth = 48

// Model is the terminal timer screen.
type Model struct {
	timer    Controller
	events   <-chan pomodoro.Event
	state    pomodoro.State
	keys     keyMap
	help     help.Model
	bar      progress.Model
	status   string
	width    int
	quitting bool
}

// New creates the terminal timer for controller. events is usually the
// channel returned by pomodoro.Timer.Subscribe; it may be nil.
func New(controller Controller, events <-chan pomodoro.Event) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return Model{
		timer:  controller,
		events: events,
		state:  controller.Snapshot(),
		keys:   defaultKeys(),
		help:   help.New(),
		bar:    bar,
	}
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles key presses and timer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.bar.Width = min(maxBarWidth, max(10, msg.Width-12))
		return m, nil

	case eventMsg:
		if !msg.ok {
			m.quitting = true
			return m, tea.Quit
		}
		m.state = msg.event.State
		if msg.event.Type == pomodoro.EventPhaseComplete {
			m.status = fmt.Sprintf("%s complete. Press space to start %s.",
				msg.event.Finished.Label(), msg.event.State.Phase.Label())
		}
		return m, waitForEvent(m.events)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.timer.Snapshot().Running {
				m.timer.Pause()
			} else {
				m.timer.Start()
				m.status = ""
			}
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
			m.status = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.state = m.timer.Snapshot()
		return m, nil
	}
	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	phaseStyle := focusStyle
	if m.state.Phase == pomodoro.PhaseBreak {
		phaseStyle = breakStyle
	}
	mode := "paused"
	if m.state.Running {
		mode = "running"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("studydesk"))
	b.WriteString("\n\n")
	b.WriteString(phaseStyle.Render(m.state.Phase.Label()))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  session %d · %s", m.state.CurrentSessionIndex, mode)))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(m.state.Formatted()))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.state.Progress()))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("completed focus sessions: %d", m.state.CompletedFocusSessions)))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return frameStyle.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}

// State returns the last state the view rendered.
func (m Model) State() pomodoro.State {
	return m.state
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

func waitForEvent(events <-chan pomodoro.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		return eventMsg{event: event, ok: ok}
	}
}
