package model

import "time"

// TimerConfig contains runtime settings for the countdown state machine.
type TimerConfig struct {
	// InitialInterval seeds the timer's stopped countdown at construction.
	InitialInterval time.Duration

	// FrameInterval is the period of the display-refresh link driving ticks.
	FrameInterval time.Duration
}
