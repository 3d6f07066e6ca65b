package clock

import (
	"testing"
	"time"
)

func TestFakeAdvance(t *testing.T) {
	start := time.Unix(1700000000, 0)
	fake := NewFake(start)

	if got := fake.Now(); !got.Equal(start) {
		t.Errorf("Expected %v, got %v", start, got)
	}

	fake.Advance(90 * time.Second)
	if got := fake.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Expected %v, got %v", start.Add(90*time.Second), got)
	}
}

func TestFakeSet(t *testing.T) {
	fake := NewFake(time.Unix(1700000000, 0))
	target := time.Unix(1800000000, 0)

	fake.Set(target)
	if got := fake.Now(); !got.Equal(target) {
		t.Errorf("Expected %v, got %v", target, got)
	}
}

func TestSystemClockAdvances(t *testing.T) {
	system := System()
	before := system.Now()
	after := system.Now()
	if after.Before(before) {
		t.Errorf("Expected monotonic reads, got %v then %v", before, after)
	}
}
