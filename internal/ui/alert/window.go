package alert

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"studydesk/internal/core/pomodoro"
)

// Config defines alert visuals.
type Config struct {
	Opacity    uint8
	Fullscreen bool
}

// Window announces a finished phase and offers to start the next one.
type Window struct {
	window        fyne.Window
	config        Config
	background    *canvas.Rectangle
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	sessionLabel  *canvas.Text
	startButton   *widget.Button
	laterButton   *widget.Button
	onStart       func()
	onLater       func()
}

const (
	alertWidthFraction  = float32(0.22)
	alertHeightFraction = float32(0.2)
	defaultScreenWidth  = float32(1920)
	defaultScreenHeight = float32(1080)
)

var (
	focusAccent = color.NRGBA{R: 239, G: 83, B: 80, A: 255}
	breakAccent = color.NRGBA{R: 102, G: 187, B: 106, A: 255}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the alert window. It stays hidden until Show.
func New(app fyne.App, config Config) *Window {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	} else {
		window = app.NewWindow("studydesk")
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})

	titleLabel := canvas.NewText("", focusAccent)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 22

	subtitleLabel := canvas.NewText("", textColor)
	subtitleLabel.TextSize = 15

	sessionLabel := canvas.NewText("", textColor)
	sessionLabel.TextSize = 13

	alert := &Window{
		window:        window,
		config:        config,
		background:    background,
		titleLabel:    titleLabel,
		subtitleLabel: subtitleLabel,
		sessionLabel:  sessionLabel,
	}

	alert.startButton = widget.NewButton("Start", func() {
		alert.Hide()
		if alert.onStart != nil {
			alert.onStart()
		}
	})
	alert.startButton.Importance = widget.HighImportance
	alert.laterButton = widget.NewButton("Later", func() {
		alert.Hide()
		if alert.onLater != nil {
			alert.onLater()
		}
	})

	buttons := container.NewHBox(layout.NewSpacer(), alert.laterButton, alert.startButton)
	texts := container.New(&textColumnLayout{}, titleLabel, subtitleLabel, sessionLabel)
	content := container.NewBorder(nil, container.NewPadded(buttons), nil, nil, container.NewPadded(texts))
	window.SetContent(container.NewStack(background, content))
	window.SetCloseIntercept(alert.Hide)

	return alert
}

// Show announces that finished has ended. state is the timer state after
// the swap.
func (alert *Window) Show(finished pomodoro.Phase, state pomodoro.State) {
	message := MessageFor(finished, state)
	alert.titleLabel.Text = message.Title
	alert.titleLabel.Color = accentFor(state.Phase)
	alert.subtitleLabel.Text = message.Subtitle
	alert.sessionLabel.Text = message.Sessions
	alert.startButton.SetText(message.StartLabel)
	alert.titleLabel.Refresh()
	alert.subtitleLabel.Refresh()
	alert.sessionLabel.Refresh()

	alert.applyWindowMode()
	alert.window.Show()
	alert.window.RequestFocus()
}

// Hide closes the alert.
func (alert *Window) Hide() {
	if alert.config.Fullscreen {
		alert.window.SetFullScreen(false)
	}
	alert.window.Hide()
}

// SetOnStart sets the handler for the start button.
func (alert *Window) SetOnStart(handler func()) {
	alert.onStart = handler
}

// SetOnLater sets the handler for the dismiss button.
func (alert *Window) SetOnLater(handler func()) {
	alert.onLater = handler
}

// UpdateConfig updates alert visuals.
func (alert *Window) UpdateConfig(config Config) {
	alert.config = config
	alert.background.FillColor = color.NRGBA{A: config.Opacity}
	canvas.Refresh(alert.background)
	alert.applyNativeOpacity(config.Opacity)
}

// Message is the text shown for a finished phase.
type Message struct {
	Title      string
	Subtitle   string
	Sessions   string
	StartLabel string
}

// MessageFor builds the alert text for a phase swap.
func MessageFor(finished pomodoro.Phase, state pomodoro.State) Message {
	next := state.Phase
	message := Message{
		Title:      fmt.Sprintf("%s complete", finished.Label()),
		StartLabel: fmt.Sprintf("Start %s", strings.ToLower(next.Label())),
		Sessions:   fmt.Sprintf("Completed focus sessions: %d", state.CompletedFocusSessions),
	}
	if next == pomodoro.PhaseBreak {
		message.Subtitle = fmt.Sprintf("Step away for %s.", pomodoro.Format(next.Seconds()))
	} else {
		message.Subtitle = fmt.Sprintf("Ready for session %d? %s of focus.", state.CurrentSessionIndex, pomodoro.Format(next.Seconds()))
	}
	return message
}

func accentFor(phase pomodoro.Phase) color.Color {
	if phase == pomodoro.PhaseBreak {
		return breakAccent
	}
	return focusAccent
}

func (alert *Window) applyWindowMode() {
	if alert.config.Fullscreen {
		alert.window.SetFullScreen(true)
		return
	}
	alert.window.SetFullScreen(false)
	alert.resizeToScreenFraction()
	alert.applyNativeOpacity(alert.config.Opacity)
}

func (alert *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := alert.window.Canvas().Size()
	// A screen-sized canvas is the best monitor size estimate fyne offers.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * alertWidthFraction
	height := screenSize.Height * alertHeightFraction
	minSize := alert.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	alert.window.Resize(fyne.NewSize(width, height))
	alert.window.CenterOnScreen()
}

type textColumnLayout struct{}

func (column *textColumnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pad := size.Height * 0.06
	width := size.Width - pad*2
	if width < 0 {
		width = 0
	}

	y := pad
	for index, object := range objects {
		minSize := object.MinSize()
		object.Move(fyne.NewPos(pad, y))
		object.Resize(fyne.NewSize(width, minSize.Height))
		y += minSize.Height
		if index == 0 {
			y += 10
		} else {
			y += 6
		}
	}
}

func (column *textColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		height += minSize.Height + 8
	}
	return fyne.NewSize(width+20, height+20)
}
