package platform

import (
	"errors"
	"testing"
)

func TestInstanceLockExclusive(t *testing.T) {
	lock, err := AcquireInstanceLock("countdown-lock-test")
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	defer lock.Release()

	if _, err := AcquireInstanceLock("countdown-lock-test"); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}
}

func TestInstanceLockReleaseAllowsReacquire(t *testing.T) {
	lock, err := AcquireInstanceLock("countdown-relock-test")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	again, err := AcquireInstanceLock("countdown-relock-test")
	if err != nil {
		t.Fatalf("reacquire failed: %v", err)
	}
	again.Release()

	var nilLock *InstanceLock
	if err := nilLock.Release(); err != nil {
		t.Errorf("Expected nil lock release to be a no-op, got %v", err)
	}
}
