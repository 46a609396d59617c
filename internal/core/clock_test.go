package core

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	now := RealClock{}.Now()
	after := time.Now()

	if now.Before(before) || now.After(after) {
		t.Errorf("RealClock.Now() returned %v, expected between %v and %v", now, before, after)
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)

	if !clock.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", clock.Now(), start)
	}

	clock.Advance(10 * time.Second)
	clock.Advance(50 * time.Second)
	if want := start.Add(time.Minute); !clock.Now().Equal(want) {
		t.Errorf("after advances, Now() = %v, expected %v", clock.Now(), want)
	}
}
