package fontinfotest

import (
	"sort"
	"sync"
	"time"

	"github.com/gogpu/fontinfo"
)

// ManualScheduler is a fontinfo.Scheduler driven by virtual time.
// Callbacks only run from Advance or RunNext, on the caller's goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer

	scheduled int
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements fontinfo.Scheduler.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) fontinfo.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.scheduled++
	t := &manualTimer{s: s, due: s.now + delay, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Stop implements fontinfo.Timer.
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// remove drops t from the pending list. Caller must hold s.mu.
func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return
		}
	}
}

// Advance moves virtual time forward by d, running every callback that
// becomes due in due-time order. Callbacks scheduled while advancing run
// too if they fall inside the window. It returns the number of callbacks
// run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	ran := 0
	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		t.fn()
		ran++
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
	return ran
}

// RunNext jumps to the earliest pending callback and runs it.
// It reports false if nothing was pending.
func (s *ManualScheduler) RunNext() bool {
	t := s.popDue(-1)
	if t == nil {
		return false
	}
	t.fn()
	return true
}

// popDue removes and returns the earliest timer due at or before target,
// advancing the clock to its due time. A negative target accepts any
// pending timer.
func (s *ManualScheduler) popDue(target time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	t := s.pending[0]
	if target >= 0 && t.due > target {
		return nil
	}
	s.pending = s.pending[1:]
	t.fired = true
	if t.due > s.now {
		s.now = t.due
	}
	return t
}

// Now returns the current virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of callbacks waiting to run.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Scheduled returns how many callbacks have been scheduled in total.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}
