// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

// Stateful transducers keep their state in a struct allocated each time the
// transducer is applied to a reducer. Two reductions never share state.

type taking[T any] struct {
	passthrough[T]
	left int
}

func (t *taking[T]) Step(acc any, in T) Reduction {
	if t.left <= 0 {
		return Stop(acc)
	}
	t.left--
	r := t.next.Step(acc, in)
	if t.left == 0 {
		return ensureStop(r)
	}
	return r
}

// Take forwards the first n inputs and then stops the reduction.
func Take[T any](n int) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &taking[T]{passthrough[T]{rf}, n}
	}
}

type dropping[T any] struct {
	passthrough[T]
	left int
}

func (d *dropping[T]) Step(acc any, in T) Reduction {
	if d.left > 0 {
		d.left--
		return Continue(acc)
	}
	return d.next.Step(acc, in)
}

// Drop discards the first n inputs and forwards the rest.
func Drop[T any](n int) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &dropping[T]{passthrough[T]{rf}, n}
	}
}

type takingWhile[T any] struct {
	passthrough[T]
	pred func(T) bool
}

func (t takingWhile[T]) Step(acc any, in T) Reduction {
	if !t.pred(in) {
		return Stop(acc)
	}
	return t.next.Step(acc, in)
}

// TakeWhile forwards inputs while pred holds and stops on the first input
// for which it does not; that input is not forwarded.
func TakeWhile[T any](pred func(T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return takingWhile[T]{passthrough[T]{rf}, pred}
	}
}

type droppingWhile[T any] struct {
	passthrough[T]
	pred     func(T) bool
	dropping bool
}

func (d *droppingWhile[T]) Step(acc any, in T) Reduction {
	if d.dropping && d.pred(in) {
		return Continue(acc)
	}
	d.dropping = false
	return d.next.Step(acc, in)
}

// DropWhile discards inputs while pred holds, then forwards everything,
// including later inputs that satisfy pred again.
func DropWhile[T any](pred func(T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &droppingWhile[T]{passthrough[T]{rf}, pred, true}
	}
}

type takingNth[T any] struct {
	passthrough[T]
	nth, seen int
}

func (t *takingNth[T]) Step(acc any, in T) Reduction {
	t.seen++
	if t.seen%t.nth != 0 {
		return Continue(acc)
	}
	return t.next.Step(acc, in)
}

// TakeNth forwards every nth input, starting with the nth.
// It panics if nth is not positive.
func TakeNth[T any](nth int) Transducer[T, T] {
	if nth <= 0 {
		panic("xf: TakeNth needs a positive step")
	}
	return func(rf Reducer[T]) Reducer[T] {
		return &takingNth[T]{passthrough: passthrough[T]{rf}, nth: nth}
	}
}

type partitioningBy[T any, K comparable] struct {
	passthrough[[]T]
	fn      func(T) K
	group   []T
	key     K
	started bool
}

func (p *partitioningBy[T, K]) Step(acc any, in T) Reduction {
	key := p.fn(in)
	if !p.started || key == p.key {
		p.started = true
		p.key = key
		p.group = append(p.group, in)
		return Continue(acc)
	}
	group := p.group
	p.group = nil
	p.key = key
	r := p.next.Step(acc, group)
	if r.IsLeft() {
		p.group = append(p.group, in)
	}
	return r
}

func (p *partitioningBy[T, K]) Result(acc any) any {
	if len(p.group) > 0 {
		group := p.group
		p.group = nil
		acc, _ = Unwrap(p.next.Step(acc, group))
	}
	return p.next.Result(acc)
}

// PartitionBy groups consecutive inputs with equal fn(input).
// A group is forwarded when the key changes and the last group on Result.
func PartitionBy[T any, K comparable](fn func(T) K) Transducer[T, []T] {
	return func(rf Reducer[[]T]) Reducer[T] {
		return &partitioningBy[T, K]{passthrough: passthrough[[]T]{rf}, fn: fn}
	}
}

type partitioningAll[T any] struct {
	passthrough[[]T]
	n     int
	group []T
}

func (p *partitioningAll[T]) Step(acc any, in T) Reduction {
	p.group = append(p.group, in)
	if len(p.group) < p.n {
		return Continue(acc)
	}
	group := p.group
	p.group = make([]T, 0, p.n)
	return p.next.Step(acc, group)
}

func (p *partitioningAll[T]) Result(acc any) any {
	if len(p.group) > 0 {
		group := p.group
		p.group = nil
		acc, _ = Unwrap(p.next.Step(acc, group))
	}
	return p.next.Result(acc)
}

// PartitionAll forwards groups of n inputs, plus a shorter final group on
// Result when inputs are left over. It panics if n is not positive.
func PartitionAll[T any](n int) Transducer[T, []T] {
	if n <= 0 {
		panic("xf: PartitionAll needs a positive size")
	}
	return func(rf Reducer[[]T]) Reducer[T] {
		return &partitioningAll[T]{passthrough: passthrough[[]T]{rf}, n: n, group: make([]T, 0, n)}
	}
}

type distinguishing[T comparable] struct {
	passthrough[T]
	seen map[T]struct{}
}

func (d *distinguishing[T]) Step(acc any, in T) Reduction {
	if _, ok := d.seen[in]; ok {
		return Continue(acc)
	}
	d.seen[in] = struct{}{}
	return d.next.Step(acc, in)
}

// Distinct forwards an input only the first time it is seen.
// Memory of seen values is unbounded.
func Distinct[T comparable]() Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &distinguishing[T]{passthrough[T]{rf}, make(map[T]struct{})}
	}
}

type deduping[T comparable] struct {
	passthrough[T]
	prev    T
	started bool
}

func (d *deduping[T]) Step(acc any, in T) Reduction {
	if d.started && in == d.prev {
		return Continue(acc)
	}
	d.started = true
	d.prev = in
	return d.next.Step(acc, in)
}

// Dedupe drops an input equal to the one forwarded just before it.
func Dedupe[T comparable]() Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &deduping[T]{passthrough: passthrough[T]{rf}}
	}
}

type interposing[T any] struct {
	passthrough[T]
	sep     T
	started bool
}

func (p *interposing[T]) Step(acc any, in T) Reduction {
	if p.started {
		r := p.next.Step(acc, p.sep)
		if r.IsRight() {
			return r
		}
		acc, _ = r.GetLeft()
	}
	p.started = true
	return p.next.Step(acc, in)
}

// Interpose forwards sep between consecutive inputs.
func Interpose[T any](sep T) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &interposing[T]{passthrough: passthrough[T]{rf}, sep: sep}
	}
}

type mappingIndexed[In, Out any] struct {
	passthrough[Out]
	fn func(int, In) Out
	i  int
}

func (m *mappingIndexed[In, Out]) Step(acc any, in In) Reduction {
	out := m.fn(m.i, in)
	m.i++
	return m.next.Step(acc, out)
}

// MapIndexed applies fn to each input and its zero-based position.
func MapIndexed[In, Out any](fn func(int, In) Out) Transducer[In, Out] {
	return func(rf Reducer[Out]) Reducer[In] {
		return &mappingIndexed[In, Out]{passthrough: passthrough[Out]{rf}, fn: fn}
	}
}

type keepingIndexed[In, Out any] struct {
	passthrough[Out]
	fn func(int, In) (Out, bool)
	i  int
}

func (k *keepingIndexed[In, Out]) Step(acc any, in In) Reduction {
	out, ok := k.fn(k.i, in)
	k.i++
	if !ok {
		return Continue(acc)
	}
	return k.next.Step(acc, out)
}

// KeepIndexed forwards fn(position, input) whenever fn reports a value.
func KeepIndexed[In, Out any](fn func(int, In) (Out, bool)) Transducer[In, Out] {
	return func(rf Reducer[Out]) Reducer[In] {
		return &keepingIndexed[In, Out]{passthrough: passthrough[Out]{rf}, fn: fn}
	}
}
