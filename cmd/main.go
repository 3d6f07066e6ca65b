package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/drewster99/NCCCountdownTimer/internal/core/countdown"
	"github.com/drewster99/NCCCountdownTimer/internal/core/frameclock"
	"github.com/drewster99/NCCCountdownTimer/internal/platform"
	"github.com/drewster99/NCCCountdownTimer/internal/storage"
	"github.com/drewster99/NCCCountdownTimer/internal/ui/display"
	"github.com/drewster99/NCCCountdownTimer/internal/ui/preferences"
	"github.com/drewster99/NCCCountdownTimer/internal/ui/tray"
	"github.com/drewster99/NCCCountdownTimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "NCCCountdownTimer"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		logger.Error("single instance", "err", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Error("load settings", "err", err)
	}

	fyneApp := app.NewWithID("com.drewster99.ncccountdowntimer")
	fyneApp.SetIcon(resources.Icon())

	config := settings.TimerConfig()
	frames := frameclock.NewTickerSource(config.FrameInterval)
	timer := countdown.New(config, countdown.Options{
		Frames: frames,
		Logger: logger,
	})

	displayWindow := display.New(fyneApp, timer, display.Config{
		Fullscreen:      settings.Fullscreen,
		DefaultInterval: settings.DefaultInterval,
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Error("save settings", "err", err)
		}
		displayWindow.UpdateConfig(display.Config{
			Fullscreen:      settings.Fullscreen,
			DefaultInterval: settings.DefaultInterval,
		})
		// Refresh rate changes take effect next launch; the timer keeps
		// its single frame subscription for its whole lifetime.
		if !timer.IsRunning() {
			timer.SetInterval(settings.DefaultInterval)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				displayWindow.Show()
			},
			OnToggle: func() {
				toggleTimer(timer, settings.DefaultInterval)
			},
			OnReset: func() {
				timer.SetInterval(settings.DefaultInterval)
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.Icon())
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	if trayManager != nil {
		lastStatus := ""
		cancelStatus := timer.Subscribe(func() {
			fyne.Do(func() {
				status := fmt.Sprintf("%s %s", timer.Mode(), formatRemaining(timer.Interval()))
				if status != lastStatus {
					lastStatus = status
					trayManager.SetStatus(status)
				}
				trayManager.SetRunning(timer.IsRunning())
			})
		})
		defer cancelStatus()
	}

	displayWindow.Show()
	fyneApp.Run()

	displayWindow.Close()
	timer.Close()
}

func toggleTimer(timer *countdown.Timer, defaultInterval time.Duration) {
	switch timer.Mode().(type) {
	case countdown.Running:
		timer.Pause()
	case countdown.Stopped:
		timer.Start()
	case countdown.Expired:
		timer.SetInterval(defaultInterval)
		timer.Start()
	}
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
