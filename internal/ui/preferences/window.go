package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var frameRateChoices = []string{"15", "30", "60"}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onCancel   func()
	interval   *widget.Entry
	frameRate  *widget.Select
	fullscreen *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Countdown Settings")

	interval := widget.NewEntry()
	interval.SetText(fmt.Sprintf("%d", int(settings.DefaultInterval.Seconds())))

	frameRate := widget.NewSelect(frameRateChoices, nil)
	frameRate.SetSelected(strconv.Itoa(settings.FrameRate))

	fullscreen := widget.NewCheck("Fullscreen display", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default countdown"), interval, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Refresh rate (takes effect on restart)"), frameRate, widget.NewLabel("fps")),
		fullscreen,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 220))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		interval:   interval,
		frameRate:  frameRate,
		fullscreen: fullscreen,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.interval.SetText(fmt.Sprintf("%d", int(settings.DefaultInterval.Seconds())))
	prefs.frameRate.SetSelected(strconv.Itoa(settings.FrameRate))
	prefs.fullscreen.SetChecked(settings.Fullscreen)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.DefaultInterval = time.Duration(seconds) * time.Second
	}
	if rate, ok := parsePositiveInt(prefs.frameRate.Selected); ok {
		settings.FrameRate = rate
	}
	settings.Fullscreen = prefs.fullscreen.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
