// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// task is a unit of cooperative work owned by the run queue.
type task interface {
	// run evaluates the task until it parks or finishes.
	run(s *Scheduler) (done, progressed bool)
	// discard releases a parked task that will never run again.
	discard()
}

// Scheduler drives processes cooperatively on a single goroutine.
//
// Any goroutine may submit work (Go, GoExpr, the async variants, timer
// expiries) without blocking; submissions pass through a bounded lock-free
// MPSC inbox, spill to a locked overflow queue while the inbox is full, and
// join the run queue on the next turn. Channels and processes are only
// touched by the goroutine calling Tick, Run or RunUntilIdle, so their
// state needs no locks. Only one goroutine may drive a Scheduler.
type Scheduler struct {
	cfg   config
	runq  Deque[task]
	inbox lfq.Queue[func()]

	mu       sync.Mutex
	overflow Deque[func()] // guarded by mu
	spilled  atomix.Uint32 // overflow length, written under mu

	posted  atomix.Uint32 // submissions enqueued, any goroutine
	drained uint32        // submissions run, loop goroutine only
	armed   atomix.Uint32 // timers started, any goroutine
	fired   uint32        // timers expired, loop goroutine only
}

// NewScheduler returns an idle scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scheduler{
		cfg:   cfg,
		inbox: lfq.NewMPSC[func()](cfg.inboxCapacity),
	}
}

// post submits fn to run on the loop goroutine at the start of the next turn.
// It never blocks: once the inbox is full, or while earlier submissions are
// still waiting in the overflow, fn goes to the overflow queue.
func (s *Scheduler) post(fn func()) {
	s.posted.Add(1)
	if s.spilled.Load() == 0 && s.inbox.Enqueue(&fn) == nil {
		return
	}
	s.mu.Lock()
	s.overflow.PushBack(fn)
	s.spilled.Add(1)
	s.mu.Unlock()
}

// drain runs every submission that has reached the inbox, then every
// submission that spilled to the overflow.
func (s *Scheduler) drain() bool {
	n := 0
	for {
		fn, err := s.inbox.Dequeue()
		if err != nil {
			break
		}
		s.drained++
		fn()
		n++
	}
	if s.spilled.Load() == 0 {
		return n > 0
	}
	s.mu.Lock()
	spill := s.overflow
	s.overflow = Deque[func()]{}
	s.spilled.Store(0)
	s.mu.Unlock()
	for fn := range spill.All() {
		s.drained++
		fn()
		n++
	}
	return n > 0
}

// discardParked empties the run queue, releasing every task left on it.
func (s *Scheduler) discardParked() {
	for {
		t, ok := s.runq.PopFront()
		if !ok {
			return
		}
		t.discard()
	}
}

// Tick runs one turn: it admits pending submissions, then evaluates every
// queued task once. A task that parks goes to the back of the run queue and
// is retried on the next turn; a resumed process keeps running until it
// parks again or finishes. Tick reports whether anything made progress.
func (s *Scheduler) Tick() bool {
	progressed := s.drain()
	for n := s.runq.Len(); n > 0; n-- {
		t, _ := s.runq.PopFront()
		done, p := t.run(s)
		if p {
			progressed = true
		}
		if !done {
			s.runq.PushBack(t)
		}
	}
	return progressed
}

// Run turns the scheduler until ctx is done and returns ctx.Err().
// Idle turns back off adaptively (iox.Backoff).
func (s *Scheduler) Run(ctx context.Context) error {
	var bo iox.Backoff
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Tick() {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}

// RunUntilIdle turns the scheduler until no process can make progress,
// no submission is in flight and no timer is pending. It returns the
// number of processes left parked.
func (s *Scheduler) RunUntilIdle() int {
	var bo iox.Backoff
	for {
		if s.Tick() {
			bo.Reset()
			continue
		}
		if s.settled() {
			return s.runq.Len()
		}
		bo.Wait()
	}
}

// settled reports whether no submission or timer can still wake a task.
func (s *Scheduler) settled() bool {
	return s.posted.Load() == s.drained && s.armed.Load() == s.fired
}

// Timeout returns a channel that the scheduler closes once d has elapsed.
// Taking from it parks until then; as an [Alts] arm it becomes ready on close.
func (s *Scheduler) Timeout(d time.Duration) *Chan[struct{}] {
	ch := NewChan[struct{}](1)
	s.armed.Add(1)
	time.AfterFunc(d, func() {
		s.post(func() {
			s.fired++
			ch.Close()
		})
	})
	return ch
}
