package preferences

import (
	"time"

	"github.com/drewster99/NCCCountdownTimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultInterval time.Duration
	FrameRate       int
	Fullscreen      bool
}

// DefaultSettings returns default settings for the countdown timer.
func DefaultSettings() Settings {
	return Settings{
		DefaultInterval: 60 * time.Second,
		FrameRate:       30,
		Fullscreen:      false,
	}
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	frameRate := settings.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	return model.TimerConfig{
		InitialInterval: settings.DefaultInterval,
		FrameInterval:   time.Second / time.Duration(frameRate),
	}
}
