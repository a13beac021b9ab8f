// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"context"
	"errors"

	"code.hybscloud.com/kont"
)

// Future is the eventual result of an asynchronous channel operation.
// It is resolved exactly once by the scheduler goroutine and may be awaited
// from any goroutine.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Done returns a channel closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await waits for the result or for ctx to be done, whichever comes first.
// The scheduler must be turned (Run, RunUntilIdle or Tick) by another
// goroutine for the future to resolve; awaiting on the loop goroutine
// itself only returns once ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Resolved reports whether the result is available.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// await runs op as its own process on s and resolves a future with its
// resumption.
func await[R any](s *Scheduler, op kont.Eff[R]) *Future[R] {
	f := newFuture[R]()
	spawn(s, func() (R, *kont.Suspension[R]) { return kont.Step(op) }, nil, func(v R, err error) {
		var pe *ProcessError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		f.resolve(v, err)
	})
	return f
}

// TakeAsync takes from ch without a calling process.
// The future resolves with the taken value, or with OK false once ch is
// closed and drained.
func TakeAsync[T any](s *Scheduler, ch *Chan[T]) *Future[Received[T]] {
	return await(s, kont.Perform(Take[T]{Chan: ch}))
}

// PutAsync puts v on ch without a calling process.
// The future resolves with true once v is accepted, false if ch is closed,
// or ErrNilValue for a nil v.
func PutAsync[T any](s *Scheduler, ch *Chan[T], v T) *Future[bool] {
	return await(s, kont.Perform(Put[T]{Chan: ch, Value: v}))
}

// AltsAsync runs a selection over cases without a calling process.
func AltsAsync(s *Scheduler, cases []Case, opts ...AltsOption) *Future[Selected] {
	return await(s, kont.Perform(NewAlts(cases, opts...)))
}
