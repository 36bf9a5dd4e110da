package press

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// CancelFunc cancels a scheduled callback. Calling it more than once, or
// after the callback has run, is a no-op.
type CancelFunc func()

// Scheduler defers work to the next rendering frame or to a later time.
// The controller uses it for menu positioning (which needs real layout
// dimensions), deferred focus, transient-state expiry, and announcement
// display.
//
// Start is called by the controller with its event queue and stop
// channel; an asynchronous scheduler must deliver callbacks by posting
// onto the queue so all behavior runs on the controller goroutine.
type Scheduler interface {
	Start(queue chan<- func(), stop <-chan struct{})
	PostFrame(fn func()) CancelFunc
	PostDelayed(d time.Duration, fn func()) CancelFunc
}

// timedScheduler is the default Scheduler: frames are approximated by a
// fixed frame duration and delays use real timers. Callbacks hop onto the
// controller queue once Start has run.
type timedScheduler struct {
	mu    sync.Mutex
	frame time.Duration
	queue chan<- func()
	stop  <-chan struct{}
}

var _ Scheduler = (*timedScheduler)(nil)

func newTimedScheduler(frame time.Duration) *timedScheduler {
	return &timedScheduler{frame: frame}
}

// Start records the delivery queue. Before Start, callbacks run directly
// on the timer goroutine; the controller always starts its scheduler
// before any behavior can schedule work.
func (s *timedScheduler) Start(queue chan<- func(), stop <-chan struct{}) {
	s.mu.Lock()
	s.queue = queue
	s.stop = stop
	s.mu.Unlock()
}

// PostFrame defers fn to the next frame boundary.
func (s *timedScheduler) PostFrame(fn func()) CancelFunc {
	return s.PostDelayed(s.frame, fn)
}

// PostDelayed runs fn after d on the controller goroutine.
func (s *timedScheduler) PostDelayed(d time.Duration, fn func()) CancelFunc {
	var canceled atomic.Bool

	s.mu.Lock()
	queue, stop := s.queue, s.stop
	s.mu.Unlock()

	t := time.AfterFunc(d, func() {
		if canceled.Load() {
			return
		}
		wrapped := func() {
			// Re-check: cancellation may have raced the queue hop.
			if !canceled.Load() {
				fn()
			}
		}
		if queue == nil {
			wrapped()
			return
		}
		select {
		case queue <- wrapped:
		case <-stop:
			// Controller stopped; drop the callback.
		}
	})

	return func() {
		canceled.Store(true)
		t.Stop()
	}
}

// ManualScheduler is a deterministic Scheduler for tests and for hosts
// that pump the behavior layer synchronously. Frame callbacks run when
// RunFrame is called; delayed callbacks run when Advance moves the
// synthetic clock past their due time. Callbacks execute inline on the
// calling goroutine.
type ManualScheduler struct {
	now    time.Duration
	seq    int
	frames []*manualTask
	timers []*manualTask
}

type manualTask struct {
	fn       func()
	due      time.Duration
	seq      int
	canceled bool
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler with the clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Start implements Scheduler. Manual callbacks never cross goroutines,
// so the queue is unused.
func (s *ManualScheduler) Start(chan<- func(), <-chan struct{}) {}

// PostFrame queues fn for the next RunFrame call.
func (s *ManualScheduler) PostFrame(fn func()) CancelFunc {
	t := &manualTask{fn: fn, seq: s.seq}
	s.seq++
	s.frames = append(s.frames, t)
	return func() { t.canceled = true }
}

// PostDelayed queues fn to run once the clock advances by d.
func (s *ManualScheduler) PostDelayed(d time.Duration, fn func()) CancelFunc {
	t := &manualTask{fn: fn, due: s.now + d, seq: s.seq}
	s.seq++
	s.timers = append(s.timers, t)
	return func() { t.canceled = true }
}

// RunFrame executes the frame callbacks queued so far. Callbacks
// scheduled during RunFrame wait for the next RunFrame.
func (s *ManualScheduler) RunFrame() {
	pending := s.frames
	s.frames = nil
	for _, t := range pending {
		if !t.canceled {
			t.fn()
		}
	}
}

// Advance moves the clock forward by d, running every due timer in
// chronological order. Timers scheduled by running callbacks also fire
// if they fall within the advanced window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		idx := -1
		for i, t := range s.timers {
			if t.canceled || t.due > target {
				continue
			}
			if idx == -1 || t.due < s.timers[idx].due ||
				(t.due == s.timers[idx].due && t.seq < s.timers[idx].seq) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		s.now = t.due
		t.fn()
	}
	s.now = target
	s.compact()
}

// Now returns the synthetic clock.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// PendingFrames returns the number of live frame callbacks.
func (s *ManualScheduler) PendingFrames() int {
	n := 0
	for _, t := range s.frames {
		if !t.canceled {
			n++
		}
	}
	return n
}

// PendingTimers returns the number of live delayed callbacks.
func (s *ManualScheduler) PendingTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// compact drops canceled timers so they do not accumulate.
func (s *ManualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	s.timers = live
	sort.SliceStable(s.timers, func(i, j int) bool {
		return s.timers[i].due < s.timers[j].due
	})
}
