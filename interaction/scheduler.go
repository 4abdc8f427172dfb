package interaction

import (
	"sync"
	"time"
)

// Timer is a pending callback
type Timer interface {
	// Stop cancels the callback; it reports whether the call was prevented
	Stop() bool
}

// Scheduler provides the clock and delayed callbacks for a controller.
// Callbacks must run on the same goroutine as the controller's handlers.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// LoopScheduler runs wall-clock timers whose callbacks are posted back onto
// an event loop. The loop owner receives from Queue (or calls Drain) and
// runs each function.
type LoopScheduler struct {
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoopScheduler creates a scheduler with a queue of the given capacity
func NewLoopScheduler(capacity int) *LoopScheduler {
	return &LoopScheduler{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

func (s *LoopScheduler) Now() time.Time {
	return time.Now()
}

// AfterFunc waits d on its own goroutine, then posts f to the loop
func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		s.Post(func() {
			if lt.stopped {
				return
			}
			lt.fired = true
			f()
		})
	})
	return lt
}

// Post queues f for the loop. It blocks while the queue is full and drops f
// once the scheduler is closed.
func (s *LoopScheduler) Post(f func()) {
	select {
	case s.queue <- f:
	case <-s.done:
	}
}

// Queue is the channel the loop receives callbacks from
func (s *LoopScheduler) Queue() <-chan func() {
	return s.queue
}

// Done is closed by Close
func (s *LoopScheduler) Done() <-chan struct{} {
	return s.done
}

// Drain runs every callback queued so far without blocking and returns how
// many ran
func (s *LoopScheduler) Drain() int {
	n := 0
	for {
		select {
		case f := <-s.queue:
			f()
			n++
		default:
			return n
		}
	}
}

// Close releases goroutines blocked in Post. Pending timers become no-ops.
func (s *LoopScheduler) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// loopTimer flags are only touched on the loop goroutine
type loopTimer struct {
	timer   *time.Timer
	stopped bool
	fired   bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
