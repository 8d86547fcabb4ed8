package session

import (
	"math"
	"sync"
	"time"
)

// DefaultMaxTimerDelay is the longest single delay the scheduler will hand to
// a timer. It mirrors the 2147483647 ms ceiling of the UI platform the
// intranet originally shipped on; waits beyond it are chained.
const DefaultMaxTimerDelay = time.Duration(math.MaxInt32) * time.Millisecond

// Scheduler guarantees that, absent an explicit logout, onExpire runs no
// later than the armed deadline. At most one timer is ever pending: Arm
// cancels any previous one before scheduling.
//
// Deadlines beyond maxDelay are reached by chaining: a timer is set for
// (remaining - maxDelay) and, on fire, re-arms on the same absolute deadline
// with a fresh reading of the clock, so drift does not accumulate.
type Scheduler struct {
	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	maxDelay time.Duration
	now      func() time.Time
	onExpire func()
}

// NewScheduler returns a Scheduler invoking onExpire at armed deadlines.
func NewScheduler(onExpire func()) *Scheduler {
	return &Scheduler{
		maxDelay: DefaultMaxTimerDelay,
		now:      time.Now,
		onExpire: onExpire,
	}
}

// Arm schedules onExpire for the given absolute deadline, superseding any
// previously armed one. A deadline at or before now triggers onExpire
// synchronously before Arm returns.
func (s *Scheduler) Arm(deadline time.Time) {
	s.mu.Lock()
	s.gen++
	expired := s.armLocked(deadline, s.gen)
	s.mu.Unlock()
	if expired {
		// Token ya vencido al armar: logout inmediato.
		s.onExpire()
	}
}

// armLocked schedules generation g for deadline. Callers hold s.mu. It
// reports true when the deadline has already passed, leaving the onExpire
// call to the caller so it runs outside the lock.
//
// The chain hop re-checks the generation and re-arms inside one critical
// section. A Cancel or re-Arm landing between a hop firing and its re-arm
// bumps gen first, so the hop backs off instead of resurrecting the timer.
func (s *Scheduler) armLocked(deadline time.Time, g uint64) bool {
	s.stopLocked()

	remaining := deadline.Sub(s.now())
	if remaining <= 0 {
		return true
	}

	if remaining > s.maxDelay {
		s.timer = time.AfterFunc(remaining-s.maxDelay, func() {
			s.mu.Lock()
			if s.gen != g {
				s.mu.Unlock()
				return
			}
			expired := s.armLocked(deadline, g)
			s.mu.Unlock()
			if expired {
				s.onExpire()
			}
		})
	} else {
		s.timer = time.AfterFunc(remaining, func() {
			if s.claim(g) {
				s.onExpire()
			}
		})
	}
	return false
}

// Cancel stops the pending timer, if any. Idempotent.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	s.gen++
	s.stopLocked()
	s.mu.Unlock()
}

// Pending reports whether a timer is currently armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// claim consumes generation g: it returns true exactly once for the armed
// generation, so a timer that races a Cancel or re-Arm never fires onExpire.
func (s *Scheduler) claim(g uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != g {
		return false
	}
	s.timer = nil
	return true
}
