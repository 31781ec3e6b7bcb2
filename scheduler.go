package fontinfo

import "time"

// Scheduler runs delayed one-shot callbacks.
//
// The Registry keeps at most one scheduled callback at a time. Tests can
// plug in a virtual-time implementation such as
// fontinfotest.ManualScheduler.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// callback before it ran.
	Stop() bool
}

// TimerScheduler schedules callbacks with time.AfterFunc.
// Callbacks run on their own goroutine.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}
