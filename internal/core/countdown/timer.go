package countdown

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/drewster99/NCCCountdownTimer/internal/core/clock"
	"github.com/drewster99/NCCCountdownTimer/internal/core/frameclock"
	"github.com/drewster99/NCCCountdownTimer/internal/core/model"
)

// ErrInvalidInterval indicates a negative duration was supplied to
// SetInterval. The write is recorded and dropped; state never changes.
var ErrInvalidInterval = errors.New("invalid interval: negative duration")

// DefaultInterval is the countdown a freshly constructed timer holds.
const DefaultInterval = 60 * time.Second

// Options contains injectable collaborators for Timer.
type Options struct {
	// Clock supplies "now". Nil falls back to the system clock.
	Clock clock.Clock

	// Frames delivers the periodic display-refresh callback. Nil falls
	// back to a ticker source at the configured frame interval.
	Frames frameclock.Source

	// Logger receives debug and error diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Timer is a countdown state machine driven by a display-refresh link.
//
// The timer owns a single Mode value. Observers subscribe for a payload-less
// "will change" signal fired before every observable mutation and on every
// frame; they re-read Mode or Interval afterwards to see the new state.
type Timer struct {
	mu        sync.Mutex
	clock     clock.Clock
	logger    *slog.Logger
	mode      Mode
	link      frameclock.Link
	observers map[int]func()
	nextID    int
	closed    bool
}

// New creates a Timer holding Stopped(config.InitialInterval), subscribed
// once to the frame source with its link disabled.
func New(config model.TimerConfig, options Options) *Timer {
	if config.InitialInterval <= 0 {
		config.InitialInterval = DefaultInterval
	}
	if options.Clock == nil {
		options.Clock = clock.System()
	}
	if options.Frames == nil {
		options.Frames = frameclock.NewTickerSource(config.FrameInterval)
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	timer := &Timer{
		clock:     options.Clock,
		logger:    options.Logger.With("subsystem", "core", "category", "countdown"),
		mode:      Stopped{Remaining: config.InitialInterval},
		observers: make(map[int]func()),
	}
	timer.link = options.Frames.Subscribe(timer.Tick)
	return timer
}

// Subscribe registers an observer notified immediately before every state
// mutation and on every frame. The returned func removes the observer.
// Handlers run synchronously on the mutating goroutine and may read the
// timer; they still see the pre-mutation state.
func (timer *Timer) Subscribe(fn func()) (cancel func()) {
	timer.mu.Lock()
	id := timer.nextID
	timer.nextID++
	timer.observers[id] = fn
	timer.mu.Unlock()

	return func() {
		timer.mu.Lock()
		delete(timer.observers, id)
		timer.mu.Unlock()
	}
}

// Mode returns the current state.
func (timer *Timer) Mode() Mode {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.mode
}

// SetMode replaces the state directly, toggling the frame link to match.
// A Stopped mode with negative remaining time is rejected.
func (timer *Timer) SetMode(mode Mode) {
	if stopped, ok := mode.(Stopped); ok && stopped.Remaining < 0 {
		timer.logger.Error("mode rejected", "err", ErrInvalidInterval, "remaining", stopped.Remaining)
		return
	}

	timer.notifyWillChange()
	timer.mu.Lock()
	timer.applyModeLocked(mode)
	timer.mu.Unlock()
}

// IsRunning reports whether the timer is in the Running state.
func (timer *Timer) IsRunning() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return isRunning(timer.mode)
}

// Interval returns the effective remaining time: the frozen value while
// Stopped, the live deadline distance while Running, zero once Expired.
func (timer *Timer) Interval() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.intervalLocked()
}

// SetInterval writes a new countdown value.
//
// The will-change signal fires unconditionally, even when the write is
// rejected; a negative value is recorded as ErrInvalidInterval and leaves
// state untouched. Zero expires the timer immediately. A positive value
// freezes into Stopped while halted and resets the deadline while Running.
func (timer *Timer) SetInterval(value time.Duration) {
	timer.notifyWillChange()

	if value < 0 {
		timer.logger.Error("interval rejected", "err", ErrInvalidInterval, "value", value)
		return
	}

	timer.mu.Lock()
	switch {
	case value == 0:
		timer.applyModeLocked(Expired{})
	case isRunning(timer.mode):
		timer.applyModeLocked(Running{ExpiresAt: timer.clock.Now().Add(value)})
	default:
		timer.applyModeLocked(Stopped{Remaining: value})
	}
	timer.mu.Unlock()

	timer.logger.Debug("interval set", "value", value)
}

// Start transitions Stopped to Running against the stored remaining time.
// Any other state is a no-op; an expired timer is only revived by writing
// a fresh positive interval.
func (timer *Timer) Start() {
	timer.mu.Lock()
	stopped, ok := timer.mode.(Stopped)
	timer.mu.Unlock()
	if !ok {
		return
	}

	timer.notifyWillChange()
	timer.mu.Lock()
	timer.applyModeLocked(Running{ExpiresAt: timer.clock.Now().Add(stopped.Remaining)})
	timer.mu.Unlock()

	timer.logger.Debug("started", "remaining", stopped.Remaining)
}

// Pause freezes a Running timer into Stopped at its effective remaining
// time. Any other state is a no-op; pausing twice equals pausing once.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	running, ok := timer.mode.(Running)
	timer.mu.Unlock()
	if !ok {
		return
	}

	remaining := running.ExpiresAt.Sub(timer.clock.Now())
	if remaining < 0 {
		remaining = 0
	}

	timer.notifyWillChange()
	timer.mu.Lock()
	timer.applyModeLocked(Stopped{Remaining: remaining})
	timer.mu.Unlock()

	timer.logger.Debug("paused", "remaining", remaining)
}

// Tick is one frame of the display-refresh link. It signals observers
// unconditionally, then expires the timer once the deadline has passed.
func (timer *Timer) Tick() {
	timer.notifyWillChange()

	timer.mu.Lock()
	_, expired := timer.mode.(Expired)
	if !expired && timer.intervalLocked() <= 0 {
		timer.applyModeLocked(Expired{})
		timer.mu.Unlock()
		timer.logger.Debug("expired")
		return
	}
	timer.mu.Unlock()
}

// Close releases the frame subscription. The timer must not tick after
// Close; calling Close more than once is harmless.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.closed = true
	link := timer.link
	timer.link = nil
	timer.observers = nil
	timer.mu.Unlock()

	if link != nil {
		link.Disable()
		link.Close()
	}
}

func (timer *Timer) intervalLocked() time.Duration {
	switch mode := timer.mode.(type) {
	case Stopped:
		return mode.Remaining
	case Running:
		return mode.ExpiresAt.Sub(timer.clock.Now())
	case Expired:
		return 0
	}
	return 0
}

// applyModeLocked replaces the state and keeps the frame link aligned:
// enabled exactly while Running.
func (timer *Timer) applyModeLocked(mode Mode) {
	timer.mode = mode
	if timer.link == nil {
		return
	}
	if isRunning(mode) {
		timer.link.Enable()
	} else {
		timer.link.Disable()
	}
}

// notifyWillChange runs every observer with the lock released, strictly
// before the pending mutation becomes observable.
func (timer *Timer) notifyWillChange() {
	timer.mu.Lock()
	handlers := make([]func(), 0, len(timer.observers))
	for _, fn := range timer.observers {
		handlers = append(handlers, fn)
	}
	timer.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

func isRunning(mode Mode) bool {
	_, ok := mode.(Running)
	return ok
}
