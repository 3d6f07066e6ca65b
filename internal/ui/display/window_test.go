package display

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name  string
		value time.Duration
		want  string
	}{
		{"Zero", 0, "00:00.0"},
		{"Negative clamps", -3 * time.Second, "00:00.0"},
		{"Tenths", 2500 * time.Millisecond, "00:02.5"},
		{"One minute", time.Minute, "01:00.0"},
		{"Mixed", 90*time.Second + 300*time.Millisecond, "01:30.3"},
		{"Rounds down", 59*time.Second + 990*time.Millisecond, "00:59.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatClock(tt.value); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
