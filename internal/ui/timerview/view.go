package timerview

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"studydesk/internal/core/pomodoro"
)

// Controller is the part of pomodoro.Timer the view drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Snapshot() pomodoro.State
}

var (
	focusColor = color.NRGBA{R: 239, G: 83, B: 80, A: 255}
	breakColor = color.NRGBA{R: 102, G: 187, B: 106, A: 255}
)

// View shows the countdown with start/pause and reset controls.
type View struct {
	timer        Controller
	phaseLabel   *canvas.Text
	clock        *canvas.Text
	progress     *widget.ProgressBar
	sessionLabel *widget.Label
	toggleButton *widget.Button
	resetButton  *widget.Button
	content      fyne.CanvasObject
}

// New builds the view for timer.
func New(timer Controller) *View {
	view := &View{timer: timer}

	view.phaseLabel = canvas.NewText("", focusColor)
	view.phaseLabel.Alignment = fyne.TextAlignCenter
	view.phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.phaseLabel.TextSize = 20

	view.clock = canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	view.clock.Alignment = fyne.TextAlignCenter
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.TextSize = 64

	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }

	view.sessionLabel = widget.NewLabel("")
	view.sessionLabel.Alignment = fyne.TextAlignCenter

	view.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.toggle)
	view.toggleButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		view.timer.Reset()
		view.Render(view.timer.Snapshot())
	})

	view.content = container.NewVBox(
		view.phaseLabel,
		view.clock,
		view.progress,
		view.sessionLabel,
		container.NewCenter(container.NewHBox(view.toggleButton, view.resetButton)),
	)
	view.Render(timer.Snapshot())
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Render updates every widget from state. Call it on the fyne thread.
func (view *View) Render(state pomodoro.State) {
	view.phaseLabel.Text = state.Phase.Label()
	view.phaseLabel.Color = focusColor
	if state.Phase == pomodoro.PhaseBreak {
		view.phaseLabel.Color = breakColor
	}
	view.phaseLabel.Refresh()

	view.clock.Text = state.Formatted()
	view.clock.Refresh()

	view.progress.SetValue(state.Progress())
	view.sessionLabel.SetText(fmt.Sprintf("Session %d · %d completed", state.CurrentSessionIndex, state.CompletedFocusSessions))

	if state.Running {
		view.toggleButton.SetText("Pause")
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetText("Start")
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

// toggle starts an idle timer or pauses a running one.
func (view *View) toggle() {
	if view.timer.Snapshot().Running {
		view.timer.Pause()
	} else {
		view.timer.Start()
	}
	view.Render(view.timer.Snapshot())
}
