// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"errors"
	"math/rand/v2"

	"code.hybscloud.com/csp/xf"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Case is one arm of an [Alts] selection: a take or a put on a channel.
type Case interface {
	// ready reports whether the case completes without parking.
	ready() bool
	// perform completes the case. ok is false on a closed channel.
	perform() (value any, ok bool, err error)
}

type takeCase[T any] struct {
	ch *Chan[T]
}

// TakeCase returns the selection arm taking from ch.
// It is ready when a value is buffered or ch is closed, so a [Scheduler.Timeout]
// channel can serve as an arm.
func TakeCase[T any](ch *Chan[T]) Case { return takeCase[T]{ch} }

func (c takeCase[T]) ready() bool { return c.ch.CanTake() || c.ch.Closed() }

func (c takeCase[T]) perform() (any, bool, error) {
	v, err := c.ch.Take()
	if err == nil {
		return v, true, nil
	}
	if errors.Is(err, ErrClosed) {
		return nil, false, nil
	}
	return nil, false, err
}

type putCase[T any] struct {
	ch *Chan[T]
	v  T
}

// PutCase returns the selection arm putting v on ch.
// It is ready when ch can accept a put or is closed.
func PutCase[T any](ch *Chan[T], v T) Case { return putCase[T]{ch, v} }

func (c putCase[T]) ready() bool { return c.ch.CanPut() || c.ch.Closed() }

func (c putCase[T]) perform() (any, bool, error) {
	err := c.ch.Put(c.v)
	if err == nil {
		return nil, true, nil
	}
	if errors.Is(err, ErrClosed) {
		return nil, false, nil
	}
	return nil, false, err
}

// Selected is the result of an [Alts] selection.
type Selected struct {
	// Index is the position of the chosen case, or -1 for the default.
	Index int
	// Case is the chosen case; nil for the default.
	Case Case
	// Value is the taken value, the default value, or nil after a put.
	Value any
	// OK is false when the chosen channel was closed.
	OK bool
}

// Default reports whether no case was ready and the default value was used.
func (s Selected) Default() bool { return s.Index < 0 }

// AltsOption configures an [Alts] selection.
type AltsOption func(*Alts)

// Priority chooses the first ready case in input order instead of a
// uniformly random one.
func Priority() AltsOption {
	return func(a *Alts) { a.Priority = true }
}

// Default completes the selection with v, without touching any channel,
// when no case is ready.
func Default(v any) AltsOption {
	return func(a *Alts) {
		a.Default = v
		a.HasDefault = true
	}
}

// Alts is the effect operation choosing one ready case among Cases.
// Perform(Alts{...}) resumes with a Selected.
type Alts struct {
	kont.Phantom[Selected]
	Cases      []Case
	Priority   bool
	Default    any
	HasDefault bool
}

// NewAlts builds a selection over cases.
func NewAlts(cases []Case, opts ...AltsOption) Alts {
	a := Alts{Cases: cases}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// readyCases keeps the positions of the ready cases, in input order.
var readyCases = xf.KeepIndexed(func(i int, c Case) (int, bool) {
	return i, c.ready()
})

// DispatchChan recomputes readiness from scratch and completes one ready case.
// Non-blocking: returns iox.ErrWouldBlock when nothing is ready and no
// default was given.
func (o Alts) DispatchChan() (kont.Resumed, error) {
	ready, err := xf.Into([]int{}, readyCases, o.Cases)
	if err != nil {
		return nil, err
	}
	if len(ready) > 0 {
		i := ready[0]
		if !o.Priority {
			i = ready[rand.IntN(len(ready))]
		}
		v, ok, err := o.Cases[i].perform()
		if err != nil {
			return nil, err
		}
		return Selected{Index: i, Case: o.Cases[i], Value: v, OK: ok}, nil
	}
	if o.HasDefault {
		return Selected{Index: -1, Value: o.Default, OK: true}, nil
	}
	return nil, iox.ErrWouldBlock
}

// AltsStep returns the step function of a selection over cases.
func AltsStep(cases []Case, opts ...AltsOption) StepFunc {
	return NewAlts(cases, opts...).DispatchChan
}
