package frameclock

import (
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = time.Second / 60

// Link is one periodic-callback subscription. Links start disabled;
// Enable and Disable are idempotent. Close releases the subscription
// permanently.
type Link interface {
	Enable()
	Disable()
	Close()
}

// Source hands out frame links. A consumer subscribes once and toggles
// the returned link rather than resubscribing.
type Source interface {
	Subscribe(fn func()) Link
}

// TickerSource delivers frame callbacks from a time.Ticker goroutine.
type TickerSource struct {
	interval time.Duration
}

// NewTickerSource creates a source firing every interval. Non-positive
// intervals fall back to DefaultFrameInterval.
func NewTickerSource(interval time.Duration) *TickerSource {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerSource{interval: interval}
}

// Subscribe starts the link's goroutine. The callback runs on that
// goroutine whenever the link is enabled.
func (source *TickerSource) Subscribe(fn func()) Link {
	link := &tickerLink{
		fn:     fn,
		stopCh: make(chan struct{}),
	}
	go link.run(source.interval)
	return link
}

type tickerLink struct {
	mu      sync.Mutex
	fn      func()
	enabled bool
	closed  bool
	stopCh  chan struct{}
}

func (link *tickerLink) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-link.stopCh:
			return
		case <-ticker.C:
			link.mu.Lock()
			enabled := link.enabled
			link.mu.Unlock()
			if enabled {
				link.fn()
			}
		}
	}
}

func (link *tickerLink) Enable() {
	link.mu.Lock()
	if !link.closed {
		link.enabled = true
	}
	link.mu.Unlock()
}

func (link *tickerLink) Disable() {
	link.mu.Lock()
	link.enabled = false
	link.mu.Unlock()
}

func (link *tickerLink) Close() {
	link.mu.Lock()
	if link.closed {
		link.mu.Unlock()
		return
	}
	link.closed = true
	link.enabled = false
	close(link.stopCh)
	link.mu.Unlock()
}
