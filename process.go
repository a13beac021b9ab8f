// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

type procState uint8

const (
	procStart procState = iota
	procRunning
	procDelivering
)

// process is a task driving one effectful computation.
type process[R any] struct {
	id     ProcessID
	state  procState
	start  func() (R, *kont.Suspension[R])
	susp   *kont.Suspension[R]
	final  R
	result *Chan[R]
	onDone func(R, error)
}

// spawn submits a process and returns it without evaluating anything.
// The computation first runs on the scheduler's next turn.
func spawn[R any](s *Scheduler, start func() (R, *kont.Suspension[R]), result *Chan[R], onDone func(R, error)) *process[R] {
	p := &process[R]{
		id:     nextProcessID(),
		start:  start,
		result: result,
		onDone: onDone,
	}
	s.post(func() {
		s.cfg.logger.Debug("csp: process spawned", "pid", p.id)
		s.runq.PushBack(p)
	})
	return p
}

// Go spawns proc on s and immediately returns its result channel.
//
// When proc completes with a non-nil value, that value is put on the result
// channel and the channel is then closed; a nil value closes it directly.
// An aborted process (see [Fail]) closes it without a value.
func Go[R any](s *Scheduler, proc kont.Eff[R]) *Chan[R] {
	result := NewChan[R](1)
	spawn(s, func() (R, *kont.Suspension[R]) { return kont.Step(proc) }, result, nil)
	return result
}

// GoExpr is [Go] for an Expr-world process.
func GoExpr[R any](s *Scheduler, proc kont.Expr[R]) *Chan[R] {
	result := NewChan[R](1)
	spawn(s, func() (R, *kont.Suspension[R]) { return Step(proc) }, result, nil)
	return result
}

func (p *process[R]) run(s *Scheduler) (done, progressed bool) {
	defer func() {
		if r := recover(); r != nil {
			p.abort(s, newPanicError(r))
			done, progressed = true, true
		}
	}()
	switch p.state {
	case procStart:
		start := p.start
		p.start = nil
		p.state = procRunning
		result, susp := start()
		if susp == nil {
			return p.finish(s, result), true
		}
		p.susp = susp
		progressed = true
	case procDelivering:
		return p.deliver(s)
	}
	for {
		// A panic while resuming must not leave a consumed suspension behind.
		susp := p.susp
		p.susp = nil
		result, next, err := Advance(susp)
		if iox.IsWouldBlock(err) {
			p.susp = next
			return false, progressed
		}
		if err != nil {
			p.abort(s, err)
			return true, true
		}
		p.susp = next
		if next == nil {
			return p.finish(s, result), true
		}
		progressed = true
	}
}

func (p *process[R]) discard() {
	if p.susp != nil {
		p.susp.Discard()
		p.susp = nil
	}
}

// finish hands the final value to onDone and the result channel.
func (p *process[R]) finish(s *Scheduler, v R) bool {
	if p.onDone != nil {
		p.onDone(v, nil)
	}
	if p.result == nil {
		return true
	}
	if isNil(v) {
		p.result.Close()
		return true
	}
	p.final = v
	p.state = procDelivering
	done, _ := p.deliver(s)
	return done
}

// deliver puts the final value on the result channel, then closes it.
// It parks while the channel is full.
func (p *process[R]) deliver(s *Scheduler) (done, progressed bool) {
	err := p.result.Put(p.final)
	if iox.IsWouldBlock(err) {
		return false, false
	}
	if err != nil && !errors.Is(err, ErrClosed) {
		s.cfg.logger.Error("csp: result delivery failed", "pid", p.id, "error", err)
	}
	p.result.Close()
	var zero R
	p.final = zero
	return true, true
}

// abort ends the process without a value.
func (p *process[R]) abort(s *Scheduler, err error) {
	perr := &ProcessError{PID: p.id, Err: err}
	s.cfg.logger.Error("csp: process aborted", "pid", p.id, "error", err)
	if p.susp != nil {
		p.susp.Discard()
		p.susp = nil
	}
	if p.onDone != nil {
		var zero R
		p.onDone(zero, perr)
	}
	if p.result != nil {
		p.result.Close()
	}
}
