// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

import "math/rand/v2"

type mapping[In, Out any] struct {
	passthrough[Out]
	fn func(In) Out
}

func (m mapping[In, Out]) Step(acc any, in In) Reduction {
	return m.next.Step(acc, m.fn(in))
}

// Map applies fn to every input.
func Map[In, Out any](fn func(In) Out) Transducer[In, Out] {
	return func(rf Reducer[Out]) Reducer[In] {
		return mapping[In, Out]{passthrough[Out]{rf}, fn}
	}
}

type filtering[T any] struct {
	passthrough[T]
	pred func(T) bool
}

func (f filtering[T]) Step(acc any, in T) Reduction {
	if !f.pred(in) {
		return Continue(acc)
	}
	return f.next.Step(acc, in)
}

// Filter forwards the inputs for which pred holds.
func Filter[T any](pred func(T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return filtering[T]{passthrough[T]{rf}, pred}
	}
}

// Remove drops the inputs for which pred holds.
func Remove[T any](pred func(T) bool) Transducer[T, T] {
	return Filter(Complement(pred))
}

type keeping[In, Out any] struct {
	passthrough[Out]
	fn func(In) (Out, bool)
}

func (k keeping[In, Out]) Step(acc any, in In) Reduction {
	out, ok := k.fn(in)
	if !ok {
		return Continue(acc)
	}
	return k.next.Step(acc, out)
}

// Keep forwards fn(input) whenever fn reports a value.
func Keep[In, Out any](fn func(In) (Out, bool)) Transducer[In, Out] {
	return func(rf Reducer[Out]) Reducer[In] {
		return keeping[In, Out]{passthrough[Out]{rf}, fn}
	}
}

// Replace substitutes inputs found as keys of smap with their values.
func Replace[T comparable](smap map[T]T) Transducer[T, T] {
	return Map(func(in T) T {
		if v, ok := smap[in]; ok {
			return v
		}
		return in
	})
}

type catting[T any] struct {
	passthrough[T]
}

func (c catting[T]) Step(acc any, in []T) Reduction {
	for _, v := range in {
		r := c.next.Step(acc, v)
		if r.IsRight() {
			return r
		}
		acc, _ = r.GetLeft()
	}
	return Continue(acc)
}

// Cat concatenates slice inputs, forwarding each element.
// A stop from downstream ends the whole reduction.
func Cat[T any]() Transducer[[]T, T] {
	return func(rf Reducer[T]) Reducer[[]T] {
		return catting[T]{passthrough[T]{rf}}
	}
}

// Mapcat applies fn to every input and concatenates the results.
func Mapcat[In, Out any](fn func(In) []Out) Transducer[In, Out] {
	return Compose(Map(fn), Cat[Out]())
}

// RandomSample forwards each input with probability prob.
func RandomSample[T any](prob float64) Transducer[T, T] {
	return Filter(func(T) bool { return rand.Float64() < prob })
}
