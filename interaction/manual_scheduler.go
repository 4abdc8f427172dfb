package interaction

import (
	"slices"
	"time"
)

// ManualScheduler is a controllable Scheduler for tests and offline tools.
// Callbacks run synchronously inside Advance.
type ManualScheduler struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

// NewManualScheduler creates a scheduler starting at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (m *ManualScheduler) Now() time.Time {
	return m.now
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.seq++
	t := &manualTimer{owner: m, deadline: m.now.Add(d), seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// Timers scheduled by a callback fire in the same call if they fall due.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.remove(next)
		if next.deadline.After(m.now) {
			m.now = next.deadline
		}
		next.f()
	}
	m.now = target
}

// Pending returns the number of timers that have not fired or been stopped
func (m *ManualScheduler) Pending() int {
	return len(m.timers)
}

func (m *ManualScheduler) nextDue(limit time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.deadline.After(limit) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualScheduler) remove(t *manualTimer) bool {
	i := slices.Index(m.timers, t)
	if i < 0 {
		return false
	}
	m.timers = slices.Delete(m.timers, i, i+1)
	return true
}

type manualTimer struct {
	owner    *ManualScheduler
	deadline time.Time
	seq      int
	f        func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}
