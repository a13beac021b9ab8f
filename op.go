// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"errors"

	"code.hybscloud.com/kont"
)

// chanDispatcher is the structural interface for channel operations.
// DispatchChan is non-blocking: it returns iox.ErrWouldBlock when the
// operation cannot complete yet, leaving the channel untouched.
type chanDispatcher interface {
	DispatchChan() (kont.Resumed, error)
}

// StepFunc evaluates a pending operation once.
// It returns (value, nil) when the operation completed and
// (nil, iox.ErrWouldBlock) when it must be retried on a later turn.
// A parked evaluation never mutates channel state.
type StepFunc func() (kont.Resumed, error)

// Received is the result of a take. OK is false when the channel was
// closed and drained.
type Received[T any] struct {
	Value T
	OK    bool
}

// Take is the effect operation for taking a value from Chan.
// Perform(Take[T]{Chan: ch}) resumes with a Received[T].
type Take[T any] struct {
	kont.Phantom[Received[T]]
	Chan *Chan[T]
}

// DispatchChan takes a buffered value, or reports the closed sentinel
// once the channel is closed and drained.
// Non-blocking: returns iox.ErrWouldBlock while the channel is empty and open.
func (o Take[T]) DispatchChan() (kont.Resumed, error) {
	v, err := o.Chan.Take()
	if err == nil {
		return Received[T]{Value: v, OK: true}, nil
	}
	if errors.Is(err, ErrClosed) {
		return Received[T]{}, nil
	}
	return nil, err
}

// Put is the effect operation for putting Value on Chan.
// Perform(Put[T]{...}) resumes with true once the value is accepted and
// with false when the channel is closed.
type Put[T any] struct {
	kont.Phantom[bool]
	Chan  *Chan[T]
	Value T
}

// DispatchChan puts Value on the channel.
// Non-blocking: returns iox.ErrWouldBlock while the buffer is full.
// A nil Value fails with ErrNilValue.
func (o Put[T]) DispatchChan() (kont.Resumed, error) {
	err := o.Chan.Put(o.Value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrClosed) {
		return false, nil
	}
	return nil, err
}

// Close is the effect operation for closing Chan. It never parks.
type Close[T any] struct {
	kont.Phantom[struct{}]
	Chan *Chan[T]
}

// DispatchChan closes the channel.
func (o Close[T]) DispatchChan() (kont.Resumed, error) {
	o.Chan.Close()
	return struct{}{}, nil
}

// TakeStep returns the step function of a take on ch.
func TakeStep[T any](ch *Chan[T]) StepFunc {
	return Take[T]{Chan: ch}.DispatchChan
}

// PutStep returns the step function of a put of v on ch.
func PutStep[T any](ch *Chan[T], v T) StepFunc {
	return Put[T]{Chan: ch, Value: v}.DispatchChan
}
