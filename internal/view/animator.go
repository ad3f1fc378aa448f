package view

import (
	"sync"
	"time"
)

// Timer is a pending deferred callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The real implementation is time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler schedules callbacks on the runtime timer.
var RealScheduler Scheduler = realScheduler{}

// FadeState is the animation state of one element.
type FadeState int

const (
	FadeIdle FadeState = iota
	FadeOut            // hidden, waiting for the swap
)

func (s FadeState) String() string {
	if s == FadeOut {
		return "fading"
	}
	return "idle"
}

type slot struct {
	state FadeState
	timer Timer
	gen   uint64
}

// Animator runs fade transitions, one slot per element key. Starting a fade
// on a key cancels that key's pending fade, so the newest value always lands
// last. Fades on different keys are independent.
type Animator struct {
	sched Scheduler

	mu    sync.Mutex
	slots map[string]*slot
}

func NewAnimator(sched Scheduler) *Animator {
	if sched == nil {
		sched = RealScheduler
	}
	return &Animator{
		sched: sched,
		slots: make(map[string]*slot),
	}
}

// Fade calls hide now and show after delay, unless another Fade on key
// supersedes it first. It does not wait for show.
func (a *Animator) Fade(key string, delay time.Duration, hide, show func()) {
	a.mu.Lock()
	sl, ok := a.slots[key]
	if !ok {
		sl = &slot{}
		a.slots[key] = sl
	}
	if sl.timer != nil {
		sl.timer.Stop()
		sl.timer = nil
	}
	sl.gen++
	gen := sl.gen
	sl.state = FadeOut
	hide()
	a.mu.Unlock()

	// Scheduled outside the lock so a scheduler may fire synchronously.
	t := a.sched.AfterFunc(delay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if sl.gen != gen {
			return
		}
		show()
		sl.state = FadeIdle
		sl.timer = nil
	})

	a.mu.Lock()
	if sl.gen == gen && sl.state == FadeOut {
		sl.timer = t
	}
	a.mu.Unlock()
}

// State reports the animation state of key.
func (a *Animator) State(key string) FadeState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if sl, ok := a.slots[key]; ok {
		return sl.state
	}
	return FadeIdle
}

// Pending returns the number of elements with a fade in flight.
func (a *Animator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, sl := range a.slots {
		if sl.state == FadeOut {
			n++
		}
	}
	return n
}

// Stop cancels every pending fade. Elements stay as they are.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, sl := range a.slots {
		if sl.timer != nil {
			sl.timer.Stop()
			sl.timer = nil
		}
		sl.gen++
		sl.state = FadeIdle
	}
}
