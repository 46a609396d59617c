package core

import "time"

// Clock stamps trace events. Swap in FakeClock for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock uses the standard time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock only moves when told to.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

func (f *FakeClock) Now() time.Time          { return f.current }
func (f *FakeClock) Advance(d time.Duration) { f.current = f.current.Add(d) }
