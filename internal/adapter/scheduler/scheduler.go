package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Timer runs callbacks on their own goroutine via time.AfterFunc.
type Timer struct{}

func (Timer) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Manual queues callbacks until the owner moves its clock forward.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []pendingCall
}

type pendingCall struct {
	at  time.Duration
	seq int
	fn  func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pending = append(m.pending, pendingCall{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock by d and runs every callback that became due,
// including ones scheduled by callbacks run during this call.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		call, ok := m.popDue(target)
		if !ok {
			break
		}
		call.fn()
		ran++
	}

	m.mu.Lock()
	if m.now < target {
		m.now = target
	}
	m.mu.Unlock()
	return ran
}

func (m *Manual) popDue(target time.Duration) (pendingCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return pendingCall{}, false
	}
	sort.Slice(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	next := m.pending[0]
	if next.at > target {
		return pendingCall{}, false
	}
	m.pending = m.pending[1:]
	if next.at > m.now {
		m.now = next.at
	}
	return next, true
}

func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
