package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingRefresher struct {
	calls int32
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("refresh context must carry a deadline")
	}
	atomic.AddInt32(&c.calls, 1)
	return c.err
}

func TestSchedulerDisabled(t *testing.T) {
	r := &countingRefresher{}
	s := New(0, r)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&r.calls) != 0 {
		t.Fatalf("disabled scheduler must not refresh")
	}
}

func TestSchedulerRunPassesDeadline(t *testing.T) {
	r := &countingRefresher{err: errors.New("upstream down")}
	s := New(time.Hour, r)

	// run logs failures instead of propagating them.
	s.run()
	if atomic.LoadInt32(&r.calls) != 1 {
		t.Fatalf("expected one refresh, got %d", r.calls)
	}
}

func TestSchedulerWaitsForFirstInterval(t *testing.T) {
	r := &countingRefresher{}
	s := New(time.Hour, r)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&r.calls) != 0 {
		t.Fatalf("scheduler should wait one interval before the first refresh")
	}
}
