// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import "iter"

// node is one link of a Deque.
type node[T any] struct {
	val        T
	prev, next *node[T]
}

// Deque is a doubly linked double-ended queue.
// The front is the head and the back is the tail.
// Every single-node operation is O(1); At is O(i).
// Reads on an empty Deque return the zero value and false.
//
// The zero value is an empty Deque ready to use.
type Deque[T any] struct {
	head, tail *node[T]
	n          int
}

// Len returns the number of stored values.
func (d *Deque[T]) Len() int { return d.n }

// PushFront inserts v at the head.
func (d *Deque[T]) PushFront(v T) {
	nd := &node[T]{val: v, next: d.head}
	if d.head != nil {
		d.head.prev = nd
	} else {
		d.tail = nd
	}
	d.head = nd
	d.n++
}

// PushBack inserts v at the tail.
func (d *Deque[T]) PushBack(v T) {
	nd := &node[T]{val: v, prev: d.tail}
	if d.tail != nil {
		d.tail.next = nd
	} else {
		d.head = nd
	}
	d.tail = nd
	d.n++
}

// PopFront removes and returns the head value.
func (d *Deque[T]) PopFront() (T, bool) {
	nd := d.head
	if nd == nil {
		var zero T
		return zero, false
	}
	d.unlink(nd)
	return nd.val, true
}

// PopBack removes and returns the tail value.
func (d *Deque[T]) PopBack() (T, bool) {
	nd := d.tail
	if nd == nil {
		var zero T
		return zero, false
	}
	d.unlink(nd)
	return nd.val, true
}

// Front returns the head value without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.head == nil {
		var zero T
		return zero, false
	}
	return d.head.val, true
}

// Back returns the tail value without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.tail == nil {
		var zero T
		return zero, false
	}
	return d.tail.val, true
}

// At returns the i-th value counted from the head.
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.n {
		var zero T
		return zero, false
	}
	nd := d.head
	for ; i > 0; i-- {
		nd = nd.next
	}
	return nd.val, true
}

// All yields the stored values from head to tail.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := d.head; nd != nil; nd = nd.next {
			if !yield(nd.val) {
				return
			}
		}
	}
}

func (d *Deque[T]) unlink(nd *node[T]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		d.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		d.tail = nd.prev
	}
	nd.prev, nd.next = nil, nil
	d.n--
}
