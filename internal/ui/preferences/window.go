package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"studydesk/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings)
	apiURL     *widget.Entry
	idleCheck  *widget.Check
	idleAfter  *widget.Entry
	alertCheck *widget.Check
	opacity    *widget.Slider
	fullscreen *widget.Check
	autostart  *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("studydesk Settings")

	apiURL := widget.NewEntry()
	apiURL.SetPlaceHolder(model.DefaultAPIURL)

	idleCheck := widget.NewCheck("Pause focus when I am away", nil)
	idleAfter := widget.NewEntry()

	alertCheck := widget.NewCheck("Show an alert when a phase ends", nil)

	opacity := widget.NewSlider(0.7, 0.95)
	opacity.Step = 0.01

	fullscreen := widget.NewCheck("Fullscreen alert", nil)

	autostart := widget.NewCheck("Open studydesk when I log in", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Account", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Server URL"),
		apiURL,
		autostart,
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		idleCheck,
		container.NewHBox(widget.NewLabel("Away after"), idleAfter, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Alert", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		alertCheck,
		widget.NewLabel("Alert opacity"),
		opacity,
		fullscreen,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 460))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		apiURL:     apiURL,
		idleCheck:  idleCheck,
		idleAfter:  idleAfter,
		alertCheck: alertCheck,
		opacity:    opacity,
		fullscreen: fullscreen,
		autostart:  autostart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.apiURL.SetText(settings.APIURL)
	prefs.idleCheck.SetChecked(settings.IdlePauseEnabled)
	prefs.idleAfter.SetText(fmt.Sprintf("%d", int(settings.IdlePauseAfter.Minutes())))
	prefs.alertCheck.SetChecked(settings.AlertEnabled)
	prefs.opacity.SetValue(settings.AlertOpacity)
	prefs.fullscreen.SetChecked(settings.AlertFullscreen)
	prefs.autostart.SetChecked(settings.LaunchAtLogin)
}

// Settings returns the last saved values.
func (prefs *Window) Settings() model.Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if url := strings.TrimSpace(prefs.apiURL.Text); url != "" {
		settings.APIURL = url
	}
	if minutes, ok := parsePositiveInt(prefs.idleAfter.Text); ok {
		settings.IdlePauseAfter = time.Duration(minutes) * time.Minute
	}

	settings.IdlePauseEnabled = prefs.idleCheck.Checked
	settings.AlertEnabled = prefs.alertCheck.Checked
	if model.ValidOpacity(prefs.opacity.Value) {
		settings.AlertOpacity = prefs.opacity.Value
	}
	settings.AlertFullscreen = prefs.fullscreen.Checked
	settings.LaunchAtLogin = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
