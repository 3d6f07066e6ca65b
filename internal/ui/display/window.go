package display

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/drewster99/NCCCountdownTimer/internal/core/countdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines display behavior.
type Config struct {
	Fullscreen      bool
	DefaultInterval time.Duration
}

const blinkPeriod = 400 * time.Millisecond

// Window presents the countdown. It observes the timer's will-change
// signal and re-reads state after each notification to redraw.
type Window struct {
	app         fyne.App
	window      fyne.Window
	timer       *countdown.Timer
	config      Config
	timeLabel   *canvas.Text
	stateLabel  *canvas.Text
	toggle      *widget.Button
	entry       *widget.Entry
	blinkCancel context.CancelFunc
	unsubscribe func()
}

// New creates the countdown display window and subscribes it to the timer.
func New(app fyne.App, timer *countdown.Timer, config Config) *Window {
	window := app.NewWindow("Countdown")
	window.SetMaster()
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeLabel := canvas.NewText("--:--.-", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 64

	stateLabel := canvas.NewText("stopped", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextSize = 14

	toggle := widget.NewButton("Start", nil)
	reset := widget.NewButton("Reset", nil)

	entry := widget.NewEntry()
	entry.SetPlaceHolder("seconds")
	setButton := widget.NewButton("Set", nil)

	controls := container.NewHBox(toggle, reset, widget.NewSeparator(), entry, setButton)
	content := container.NewVBox(
		container.NewCenter(timeLabel),
		container.NewCenter(stateLabel),
		container.NewCenter(controls),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 240))

	win := &Window{
		app:        app,
		window:     window,
		timer:      timer,
		config:     config,
		timeLabel:  timeLabel,
		stateLabel: stateLabel,
		toggle:     toggle,
		entry:      entry,
	}

	toggle.OnTapped = win.handleToggle
	reset.OnTapped = func() {
		timer.SetInterval(win.config.DefaultInterval)
	}
	setButton.OnTapped = win.handleSet
	entry.OnSubmitted = func(string) { win.handleSet() }

	// The notification fires before the mutation; deferring the redraw to
	// the fyne goroutine re-reads state after it has settled.
	win.unsubscribe = timer.Subscribe(func() {
		fyne.Do(win.refresh)
	})

	win.applyWindowMode()
	win.refresh()
	return win
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// UpdateConfig applies new display settings.
func (win *Window) UpdateConfig(config Config) {
	win.config = config
	win.applyWindowMode()
}

// Close detaches the display from the timer and stops any blinking.
func (win *Window) Close() {
	if win.unsubscribe != nil {
		win.unsubscribe()
		win.unsubscribe = nil
	}
	win.stopBlink()
}

func (win *Window) handleToggle() {
	switch win.timer.Mode().(type) {
	case countdown.Running:
		win.timer.Pause()
	case countdown.Stopped:
		win.timer.Start()
	case countdown.Expired:
		// Expired timers restart only through a fresh positive interval.
		win.timer.SetInterval(win.config.DefaultInterval)
		win.timer.Start()
	}
}

func (win *Window) handleSet() {
	seconds, err := strconv.Atoi(win.entry.Text)
	if err != nil {
		return
	}
	// Negative values flow through so the core can record the rejection.
	win.timer.SetInterval(time.Duration(seconds) * time.Second)
}

func (win *Window) refresh() {
	mode := win.timer.Mode()

	win.timeLabel.Text = formatClock(win.timer.Interval())
	win.timeLabel.Refresh()
	win.stateLabel.Text = mode.String()
	win.stateLabel.Refresh()

	switch mode.(type) {
	case countdown.Running:
		win.toggle.SetText("Pause")
		win.stopBlink()
	case countdown.Stopped:
		win.toggle.SetText("Start")
		win.stopBlink()
	case countdown.Expired:
		win.toggle.SetText("Restart")
		win.startBlink()
	}
}

func (win *Window) startBlink() {
	if win.blinkCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	win.blinkCancel = cancel

	go func() {
		visible := true
		for {
			if !sleepWithContext(ctx, blinkPeriod) {
				return
			}
			visible = !visible
			shown := visible
			fyne.Do(func() {
				if shown {
					win.timeLabel.Show()
				} else {
					win.timeLabel.Hide()
				}
			})
		}
	}()
}

func (win *Window) stopBlink() {
	if win.blinkCancel != nil {
		win.blinkCancel()
		win.blinkCancel = nil
	}
	win.timeLabel.Show()
}

func (win *Window) applyWindowMode() {
	win.window.SetFullScreen(win.config.Fullscreen)
}

func formatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	tenths := int(value / (100 * time.Millisecond))
	minutes := tenths / 600
	seconds := (tenths / 10) % 60
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths%10)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
