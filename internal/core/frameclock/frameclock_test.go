package frameclock

import (
	"testing"
	"time"
)

func TestManualStepFiresOnlyEnabledLinks(t *testing.T) {
	manual := NewManual()

	first := 0
	second := 0
	linkA := manual.Subscribe(func() { first++ })
	linkB := manual.Subscribe(func() { second++ })

	manual.Step()
	if first != 0 || second != 0 {
		t.Fatalf("Expected disabled links to stay silent, got %d/%d", first, second)
	}

	linkA.Enable()
	manual.StepN(3)
	if first != 3 {
		t.Errorf("Expected 3 callbacks on enabled link, got %d", first)
	}
	if second != 0 {
		t.Errorf("Expected 0 callbacks on disabled link, got %d", second)
	}

	linkB.Enable()
	if got := manual.EnabledLinks(); got != 2 {
		t.Errorf("Expected 2 enabled links, got %d", got)
	}
}

func TestManualEnableDisableIdempotent(t *testing.T) {
	manual := NewManual()

	calls := 0
	link := manual.Subscribe(func() { calls++ })

	link.Enable()
	link.Enable()
	manual.Step()
	if calls != 1 {
		t.Errorf("Expected one callback per frame, got %d", calls)
	}

	link.Disable()
	link.Disable()
	manual.Step()
	if calls != 1 {
		t.Errorf("Expected no callbacks while disabled, got %d", calls)
	}
}

func TestManualClosedLinkNeverFires(t *testing.T) {
	manual := NewManual()

	calls := 0
	link := manual.Subscribe(func() { calls++ })
	link.Enable()
	link.Close()

	manual.Step()
	if calls != 0 {
		t.Errorf("Expected closed link to stay silent, got %d callbacks", calls)
	}
	if got := manual.EnabledLinks(); got != 0 {
		t.Errorf("Expected 0 enabled links after close, got %d", got)
	}

	// Enable after Close must not revive the link.
	link.Enable()
	manual.Step()
	if calls != 0 {
		t.Errorf("Expected closed link to ignore Enable, got %d callbacks", calls)
	}
}

func TestTickerSourceDeliversWhileEnabled(t *testing.T) {
	source := NewTickerSource(time.Millisecond)

	fired := make(chan struct{}, 1)
	link := source.Subscribe(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer link.Close()

	select {
	case <-fired:
		t.Fatal("Expected no callbacks before Enable")
	case <-time.After(20 * time.Millisecond):
	}

	link.Enable()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Expected a callback after Enable")
	}
}

func TestTickerSourceDefaultInterval(t *testing.T) {
	source := NewTickerSource(0)
	if source.interval != DefaultFrameInterval {
		t.Errorf("Expected fallback to %v, got %v", DefaultFrameInterval, source.interval)
	}
}
