package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests and headless runs.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a Fake clock frozen at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the current fake instant.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// Advance moves the fake clock forward by delta.
func (fake *Fake) Advance(delta time.Duration) {
	fake.mu.Lock()
	fake.now = fake.now.Add(delta)
	fake.mu.Unlock()
}

// Set jumps the fake clock to the given instant.
func (fake *Fake) Set(now time.Time) {
	fake.mu.Lock()
	fake.now = now
	fake.mu.Unlock()
}
