package countdown

import (
	"testing"
	"time"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"Stopped", Stopped{Remaining: time.Minute}, "stopped"},
		{"Running", Running{ExpiresAt: time.Unix(1700000000, 0)}, "running"},
		{"Expired", Expired{}, "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
