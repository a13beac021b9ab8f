// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xf provides transducers: composable transformations of a
// reduction step that are independent of the input source and of the
// accumulation context.
//
// # Reducers
//
// A [Reducer] is the triple Init, Step and Result. Step folds one input into
// an accumulator and returns a [Reduction], either [Continue] or [Stop].
// Once a step returns Stop no further Step calls occur for that reduction.
// The accumulator is type-erased; [Transduce] and [Into] recover concrete
// types at the boundary.
//
// # Transducers
//
// A [Transducer] maps a downstream Reducer to an upstream one.
// [Compose](f, g) applies to a reducer as f(g(rf)): each input passes
// through f first, then g.
//
//   - Stateless: [Map], [Filter], [Remove], [Keep], [Replace], [Cat],
//     [Mapcat], [RandomSample].
//   - Stateful: [Take], [Drop], [TakeWhile], [DropWhile], [TakeNth],
//     [PartitionBy], [PartitionAll], [Distinct], [Dedupe], [Interpose],
//     [MapIndexed], [KeepIndexed].
//
// Stateful transducers allocate their state when applied to a reducer, so
// every [Transduce] or [Into] call starts from fresh counters and buffers.
//
// # Sources
//
// [Reduce] accepts a closed set of collection shapes: strings (folded per
// rune), slices and [Indexable] values, map[string]T (folded over values in
// key order) and iterators ([iter.Seq] or any [Iterable]). Anything else
// yields a [*NotReducibleError].
//
// # Example
//
//	evens := xf.Compose(xf.Filter(func(n int) bool { return n%2 == 0 }), xf.Take[int](3))
//	out, _ := xf.Into([]int{}, evens, []int{1, 2, 3, 4, 5, 6, 7, 8})
//	// out == []int{2, 4, 6}
package xf
