package testutil

import (
	"sync"
	"time"
)

// ManualTimers replaces time.AfterFunc in tests. Scheduled functions run only
// when Fire is called, so delayed work is deterministic.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualTimers struct {
	mu      sync.Mutex
	pending []*ManualTimer
}

// ManualTimer is one scheduled function.
type ManualTimer struct {
	owner   *ManualTimers
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewManualTimers creates an empty timer set.
func NewManualTimers() *ManualTimers {
	return &ManualTimers{}
}

// AfterFunc records fn and returns a stop function, matching the shape of
// (*time.Timer).Stop.
func (m *ManualTimers) AfterFunc(d time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &ManualTimer{owner: m, Delay: d, fn: fn}
	m.pending = append(m.pending, t)
	return t.Stop
}

// Pending returns the number of timers neither fired nor stopped.
func (m *ManualTimers) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Delays returns the delay of every scheduled timer in order.
func (m *ManualTimers) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.pending))
	for i, t := range m.pending {
		out[i] = t.Delay
	}
	return out
}

// Fire runs every pending timer in scheduling order and returns how many ran.
func (m *ManualTimers) Fire() int {
	m.mu.Lock()
	var due []func()
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t.fn)
		}
	}
	m.mu.Unlock()

	// run outside the lock; fn may schedule more timers
	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *ManualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
