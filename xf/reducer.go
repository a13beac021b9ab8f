// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

import "code.hybscloud.com/kont"

// Reduction is the outcome of one reducing step.
// Left carries an accumulator to continue with; Right carries the final
// accumulator and ends the reduction.
type Reduction = kont.Either[any, any]

// Continue returns a Reduction that keeps folding with acc.
func Continue(acc any) Reduction { return kont.Left[any, any](acc) }

// Stop returns a Reduction that ends the fold with acc.
func Stop(acc any) Reduction { return kont.Right[any, any](acc) }

// Unwrap returns the accumulator carried by r and whether r is a Stop.
func Unwrap(r Reduction) (acc any, stopped bool) {
	if acc, ok := r.GetLeft(); ok {
		return acc, false
	}
	acc, _ = r.GetRight()
	return acc, true
}

// ensureStop turns a Continue into a Stop carrying the same accumulator.
func ensureStop(r Reduction) Reduction {
	if r.IsRight() {
		return r
	}
	acc, _ := r.GetLeft()
	return Stop(acc)
}

// Reducer is a reducing function over inputs of type T.
type Reducer[T any] interface {
	// Init returns the initial accumulator.
	Init() any
	// Step folds in into acc.
	Step(acc any, in T) Reduction
	// Result finalizes acc once the input is exhausted or a step stopped.
	Result(acc any) any
}

// funcs is a Reducer assembled from plain functions.
type funcs[T any] struct {
	init   func() any
	step   func(acc any, in T) Reduction
	result func(acc any) any
}

func (f funcs[T]) Init() any                    { return f.init() }
func (f funcs[T]) Step(acc any, in T) Reduction { return f.step(acc, in) }
func (f funcs[T]) Result(acc any) any           { return f.result(acc) }

// New builds a Reducer from its three functions.
// A nil init panics when called; a nil result is the identity.
func New[T any](init func() any, step func(acc any, in T) Reduction, result func(acc any) any) Reducer[T] {
	if init == nil {
		init = noInit
	}
	if result == nil {
		result = identity
	}
	return funcs[T]{init: init, step: step, result: result}
}

func noInit() any { panic("xf: there is no init for a wrapped reducer") }

func identity(acc any) any { return acc }

// Wrap adapts a plain step function to a Reducer that never stops early.
// Its Init panics: callers must supply an initial accumulator.
func Wrap[A, T any](step func(A, T) A) Reducer[T] {
	return funcs[T]{
		init: noInit,
		step: func(acc any, in T) Reduction {
			return Continue(step(as[A](acc), in))
		},
		result: identity,
	}
}

// Append returns a Reducer collecting inputs into a []T.
func Append[T any]() Reducer[T] {
	return funcs[T]{
		init: func() any { return []T{} },
		step: func(acc any, in T) Reduction {
			return Continue(append(as[[]T](acc), in))
		},
		result: identity,
	}
}

// as recovers a typed accumulator; a nil accumulator becomes the zero A.
func as[A any](acc any) A {
	if acc == nil {
		var zero A
		return zero
	}
	return acc.(A)
}

// passthrough delegates Init and Result to the downstream reducer.
// Stateless and stateful transducers embed it and override Step.
type passthrough[T any] struct {
	next Reducer[T]
}

func (p passthrough[T]) Init() any          { return p.next.Init() }
func (p passthrough[T]) Result(acc any) any { return p.next.Result(acc) }
