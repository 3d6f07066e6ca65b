package countdown

import "time"

// Mode is the timer's current state. Exactly one of Stopped, Running or
// Expired holds at any time; there is no partial or mixed state.
type Mode interface {
	isMode()
	String() string
}

// Stopped is a halted timer holding a frozen remaining duration.
type Stopped struct {
	Remaining time.Duration
}

// Running is an active timer counting down to a deadline. The remaining
// time is derived as ExpiresAt minus now, never stored.
type Running struct {
	ExpiresAt time.Time
}

// Expired is a timer that has reached zero and halted.
type Expired struct{}

func (Stopped) isMode() {}
func (Running) isMode() {}
func (Expired) isMode() {}

func (Stopped) String() string { return "stopped" }
func (Running) String() string { return "running" }
func (Expired) String() string { return "expired" }
