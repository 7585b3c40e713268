package sched

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler runs callbacks after a delay and lets callers cancel them by
// token. Cancelling after the callback started is a no-op; a cancelled task
// never runs.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func New() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// After schedules fn to run once d has elapsed and returns a cancellation
// token. fn runs on its own goroutine.
func (s *Scheduler) After(d time.Duration, fn func()) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[token] = time.AfterFunc(d, func() {
		s.mu.Lock()
		_, pending := s.timers[token]
		delete(s.timers, token)
		s.mu.Unlock()
		if !pending {
			// Cancelled between firing and acquiring the lock.
			return
		}
		fn()
	})
	return token
}

// Cancel stops the task bound to token. It reports whether the task was
// still pending.
func (s *Scheduler) Cancel(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[token]
	if !ok {
		return false
	}
	delete(s.timers, token)
	timer.Stop()
	return true
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, timer := range s.timers {
		timer.Stop()
		delete(s.timers, token)
	}
}

// Pending reports the number of tasks not yet fired or cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
