package sched

import (
	"testing"
	"time"
)

func TestAfterRuns(t *testing.T) {
	s := New()
	done := make(chan struct{})
	s.After(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("task never ran")
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestCancelPreventsRun(t *testing.T) {
	s := New()
	ran := make(chan struct{}, 1)
	token := s.After(20*time.Millisecond, func() { ran <- struct{}{} })

	if !s.Cancel(token) {
		t.Fatalf("expected pending task to cancel")
	}
	select {
	case <-ran:
		t.Fatalf("cancelled task ran")
	case <-time.After(50 * time.Millisecond):
	}
	if s.Cancel(token) {
		t.Fatalf("second cancel should report not pending")
	}
}

func TestCancelUnknownToken(t *testing.T) {
	s := New()
	if s.Cancel("") || s.Cancel("missing") {
		t.Fatalf("unknown tokens must not report pending")
	}
}

func TestStopCancelsAll(t *testing.T) {
	s := New()
	ran := make(chan struct{}, 2)
	s.After(20*time.Millisecond, func() { ran <- struct{}{} })
	s.After(20*time.Millisecond, func() { ran <- struct{}{} })
	s.Stop()

	select {
	case <-ran:
		t.Fatalf("stopped task ran")
	case <-time.After(50 * time.Millisecond):
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", s.Pending())
	}
}
