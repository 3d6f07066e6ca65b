package frameclock

import "sync"

// Manual is a Source driven by explicit Step calls instead of real time.
// Tests advance frames deterministically with it.
type Manual struct {
	mu    sync.Mutex
	links []*manualLink
}

// NewManual creates an empty manual frame source.
func NewManual() *Manual {
	return &Manual{}
}

// Subscribe registers a callback and returns its link, disabled.
func (manual *Manual) Subscribe(fn func()) Link {
	link := &manualLink{fn: fn}
	manual.mu.Lock()
	manual.links = append(manual.links, link)
	manual.mu.Unlock()
	return link
}

// Step fires one frame: every enabled link's callback runs once.
func (manual *Manual) Step() {
	manual.mu.Lock()
	links := append([]*manualLink(nil), manual.links...)
	manual.mu.Unlock()

	for _, link := range links {
		link.fire()
	}
}

// StepN fires count consecutive frames.
func (manual *Manual) StepN(count int) {
	for i := 0; i < count; i++ {
		manual.Step()
	}
}

// EnabledLinks reports how many live links are currently enabled.
func (manual *Manual) EnabledLinks() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	count := 0
	for _, link := range manual.links {
		link.mu.Lock()
		if link.enabled && !link.closed {
			count++
		}
		link.mu.Unlock()
	}
	return count
}

type manualLink struct {
	mu      sync.Mutex
	fn      func()
	enabled bool
	closed  bool
}

func (link *manualLink) fire() {
	link.mu.Lock()
	run := link.enabled && !link.closed
	link.mu.Unlock()
	if run {
		link.fn()
	}
}

func (link *manualLink) Enable() {
	link.mu.Lock()
	if !link.closed {
		link.enabled = true
	}
	link.mu.Unlock()
}

func (link *manualLink) Disable() {
	link.mu.Lock()
	link.enabled = false
	link.mu.Unlock()
}

func (link *manualLink) Close() {
	link.mu.Lock()
	link.closed = true
	link.enabled = false
	link.mu.Unlock()
}
