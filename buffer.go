// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

// Unbounded is the capacity of a buffer that never fills.
const Unbounded = -1

// Buffer is the backing store of a channel and decides what happens on
// overflow. Values are enqueued at the head and dequeued at the tail of
// a Deque, so every variant delivers in FIFO order.
type Buffer[T any] interface {
	// Put offers v and reports whether it was stored.
	Put(v T) bool
	// Take removes the oldest value.
	Take() (T, bool)
	// Full reports whether a producer must wait before putting.
	Full() bool
	// Empty reports whether there is nothing to take.
	Empty() bool
	// Len returns the number of buffered values.
	Len() int
	// Cap returns the capacity, or Unbounded.
	Cap() int
}

// ring is the storage shared by the three buffer variants.
type ring[T any] struct {
	q Deque[T]
	n int
}

func newRing[T any](n int) ring[T] {
	if n < Unbounded {
		panic("csp: negative buffer capacity")
	}
	return ring[T]{n: n}
}

func (r *ring[T]) atCap() bool     { return r.n != Unbounded && r.q.Len() >= r.n }
func (r *ring[T]) Take() (T, bool) { return r.q.PopBack() }
func (r *ring[T]) Empty() bool     { return r.q.Len() == 0 }
func (r *ring[T]) Len() int        { return r.q.Len() }
func (r *ring[T]) Cap() int        { return r.n }

// BlockingBuffer exerts backpressure: puts are rejected once it holds n values.
type BlockingBuffer[T any] struct{ ring[T] }

// Blocking returns a buffer that rejects puts while it holds n values.
func Blocking[T any](n int) *BlockingBuffer[T] {
	return &BlockingBuffer[T]{newRing[T](n)}
}

// Put stores v unless the buffer is full.
func (b *BlockingBuffer[T]) Put(v T) bool {
	if b.atCap() {
		return false
	}
	b.q.PushFront(v)
	return true
}

// Full reports whether the buffer holds n values.
func (b *BlockingBuffer[T]) Full() bool { return b.atCap() }

// DroppingBuffer keeps the first n values and silently discards the rest.
// It never reports full, so producers never park against it.
type DroppingBuffer[T any] struct{ ring[T] }

// Dropping returns a buffer that discards new values while it holds n.
func Dropping[T any](n int) *DroppingBuffer[T] {
	return &DroppingBuffer[T]{newRing[T](n)}
}

// Put stores v, or drops it when the buffer holds n values.
func (b *DroppingBuffer[T]) Put(v T) bool {
	if b.atCap() {
		return false
	}
	b.q.PushFront(v)
	return true
}

// Full is always false.
func (*DroppingBuffer[T]) Full() bool { return false }

// SlidingBuffer keeps the n most recent values, evicting the oldest.
// It never reports full.
type SlidingBuffer[T any] struct{ ring[T] }

// Sliding returns a buffer that evicts its oldest value to make room.
func Sliding[T any](n int) *SlidingBuffer[T] {
	return &SlidingBuffer[T]{newRing[T](n)}
}

// Put always stores v, evicting the oldest value first when at capacity.
// A zero-capacity sliding buffer stores nothing.
func (b *SlidingBuffer[T]) Put(v T) bool {
	if b.n == 0 {
		return true
	}
	if b.atCap() {
		b.q.PopBack()
	}
	b.q.PushFront(v)
	return true
}

// Full is always false.
func (*SlidingBuffer[T]) Full() bool { return false }
