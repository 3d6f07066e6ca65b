package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drewster99/NCCCountdownTimer/internal/ui/preferences"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := preferences.Settings{
		DefaultInterval: 90 * time.Second,
		FrameRate:       60,
		Fullscreen:      true,
	}
	if err := SaveSettings("countdown-test", saved); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded, err := LoadSettings("countdown-test")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("Expected %+v, got %+v", saved, loaded)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := LoadSettings("countdown-missing")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded != preferences.DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", loaded)
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "countdown-bad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "default_interval_seconds: -10\nframe_rate: 1000\nfullscreen: false\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettings("countdown-bad")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if loaded.DefaultInterval != defaults.DefaultInterval {
		t.Errorf("Expected default interval kept, got %v", loaded.DefaultInterval)
	}
	if loaded.FrameRate != defaults.FrameRate {
		t.Errorf("Expected default frame rate kept, got %d", loaded.FrameRate)
	}
}
