package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"studydesk/internal/api"
	"studydesk/internal/cli"
	"studydesk/internal/core/idlewatch"
	"studydesk/internal/core/model"
	"studydesk/internal/core/pomodoro"
	"studydesk/internal/platform"
	"studydesk/internal/storage"
	"studydesk/internal/ui/alert"
	"studydesk/internal/ui/preferences"
	"studydesk/internal/ui/statsview"
	"studydesk/internal/ui/timerview"
	"studydesk/internal/ui/tray"
	"studydesk/resources"
)

const statsTimeout = 15 * time.Second

func runGUI(cmd *cobra.Command, app *cli.App) error {
	logger := app.Logger

	var showMain func()
	guard, err := platform.AcquireSingleInstance(app.Name, func() {
		if showMain != nil {
			fyne.Do(showMain)
		}
	})
	if err != nil {
		if !errors.Is(err, platform.ErrAlreadyRunning) {
			return err
		}
		if activateErr := platform.ActivateRunning(app.Name); activateErr != nil {
			logger.Warn("activate running instance", "error", activateErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "studydesk is already running.")
		return nil
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := app.Settings
	fyneApp := fyneapp.NewWithID("com.studydesk.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconFocus))

	timer := pomodoro.New(pomodoro.Config{TickInterval: settings.TickInterval, Logger: logger})
	defer timer.Close()

	mainWindow := fyneApp.NewWindow("studydesk")
	timerView := timerview.New(timer)
	statsView := statsview.New()
	mainWindow.SetContent(container.NewPadded(container.NewVBox(timerView.Content(), statsView.Content())))
	mainWindow.Resize(fyne.NewSize(420, 520))
	showMain = func() {
		mainWindow.Show()
		mainWindow.RequestFocus()
	}

	alertWindow := alert.New(fyneApp, alertConfig(settings))
	alertWindow.SetOnStart(timer.Start)

	watcher := idlewatch.New(timer, platform.NewIdleProvider(), idlewatch.Config{
		Enabled: settings.IdlePauseEnabled,
		After:   settings.IdlePauseAfter,
		Logger:  logger,
		OnIdlePause: func(time.Duration) {
			fyne.Do(func() {
				fyneApp.SendNotification(fyne.NewNotification("studydesk", "Focus paused while you were away."))
			})
		},
	})
	watcher.Start()
	defer watcher.Stop()

	refreshStats := func() {
		user := app.Session.User()
		if user == nil {
			statsView.ShowSignedOut()
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
			defer cancel()
			app.Client.Invalidate(api.TagUser)
			stats, err := app.Client.Stats(ctx)
			fyne.Do(func() {
				switch {
				case api.IsUnauthorized(err):
					if clearErr := app.Session.ClearUser(); clearErr != nil {
						logger.Warn("clear session", "error", clearErr)
					}
				case err != nil:
					logger.Warn("load stats", "error", err)
					statsView.ShowError(err)
				default:
					statsView.Show(user, stats)
				}
			})
		}()
	}

	stored, err := storage.LoadSettings(app.Name)
	if err != nil {
		logger.Warn("load saved settings", "error", err)
	}
	prefsWindow := preferences.New(fyneApp, stored, func(updated model.Settings) {
		if updated.APIURL != stored.APIURL {
			logger.Info("server URL changes apply on next start", "api_url", updated.APIURL)
		}
		if updated.LaunchAtLogin != stored.LaunchAtLogin {
			applyLaunchAtLogin(app, updated.LaunchAtLogin)
		}
		saved, err := storage.UpdatePreferences(app.Name, updated)
		if err != nil {
			logger.Error("save settings", "error", err)
		} else {
			stored = saved
		}
		runningURL := settings.APIURL
		settings = settings.WithPreferences(updated)
		settings.APIURL = runningURL
		watcher.UpdateConfig(settings.IdlePauseEnabled, settings.IdlePauseAfter)
		alertWindow.UpdateConfig(alertConfig(settings))
	})

	toggle := func() {
		if timer.Running() {
			timer.Pause()
			return
		}
		timer.Start()
	}

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        showMain,
			OnToggle:      toggle,
			OnReset:       timer.Reset,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				timer.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(trayIcon(timer.Snapshot()))
		alertWindow.SetOnLater(func() {
			logger.Debug("next phase postponed", "phase", timer.Phase())
			trayManager.SetWaiting(true)
		})
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	app.Session.OnChange(func(user *model.User) {
		if trayManager != nil {
			if user == nil {
				trayManager.SetUser("")
			} else {
				trayManager.SetUser(user.Name)
			}
		}
		if user == nil {
			statsView.ShowSignedOut()
		}
	})
	if user := app.Session.User(); user != nil && trayManager != nil {
		trayManager.SetUser(user.Name)
	}

	events := timer.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				timerView.Render(event.State)
				if trayManager != nil {
					trayManager.SetState(event.State)
					desktopApp.SetSystemTrayIcon(trayIcon(event.State))
				}
				if event.Type != pomodoro.EventPhaseComplete {
					return
				}
				message := alert.MessageFor(event.Finished, event.State)
				if settings.AlertEnabled {
					alertWindow.Show(event.Finished, event.State)
				}
				fyneApp.SendNotification(fyne.NewNotification(message.Title, message.Subtitle))
				if event.Finished == pomodoro.PhaseFocus {
					refreshStats()
				}
			})
		}
	}()

	refreshStats()
	showMain()
	fyneApp.Run()
	return nil
}

func applyLaunchAtLogin(app *cli.App, enabled bool) {
	command, err := platform.GUICommand()
	if err == nil {
		err = platform.SetLaunchAtLogin(app.Name, command, enabled)
	}
	if err != nil {
		app.Logger.Warn("update launch at login", "enabled", enabled, "error", err)
	}
}

func trayIcon(state pomodoro.State) fyne.Resource {
	switch {
	case !state.Running:
		return resources.MustIcon(resources.IconPaused)
	case state.Phase == pomodoro.PhaseBreak:
		return resources.MustIcon(resources.IconBreak)
	default:
		return resources.MustIcon(resources.IconFocus)
	}
}

func alertConfig(settings model.Settings) alert.Config {
	return alert.Config{
		Opacity:    opacityToAlpha(settings.AlertOpacity),
		Fullscreen: settings.AlertFullscreen,
	}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
