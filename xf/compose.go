// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

// Transducer transforms a reducer over Out into a reducer over In.
type Transducer[In, Out any] func(Reducer[Out]) Reducer[In]

// Compose returns the transducer f∘g: applied to rf it yields f(g(rf)),
// so each input is transformed by f and then by g.
func Compose[A, B, C any](f Transducer[A, B], g Transducer[B, C]) Transducer[A, C] {
	return func(rf Reducer[C]) Reducer[A] {
		return f(g(rf))
	}
}

// Chain composes same-typed transducers left to right.
// Chain() is [Identity].
func Chain[T any](xs ...Transducer[T, T]) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		for i := len(xs) - 1; i >= 0; i-- {
			rf = xs[i](rf)
		}
		return rf
	}
}

// Identity returns the transducer that leaves a reducer unchanged.
func Identity[T any]() Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] { return rf }
}

// Comp returns the function composition f∘g, so Comp(f, g)(x) == f(g(x)).
func Comp[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C { return f(g(x)) }
}

// Complement returns the negation of pred.
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool { return !pred(x) }
}

// Lift turns a plain element function into a [Map] transducer.
func Lift[In, Out any](fn func(In) Out) Transducer[In, Out] {
	return Map(fn)
}
