// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"code.hybscloud.com/csp/xf"
	"code.hybscloud.com/iox"
)

type chanConfig[T any] struct {
	buf   Buffer[T]
	xform xf.Transducer[T, T]
}

// ChanOption configures a channel at creation.
type ChanOption[T any] func(*chanConfig[T])

// WithBuffer backs the channel with buf instead of a Blocking buffer.
// The capacity argument of NewChan is then ignored.
func WithBuffer[T any](buf Buffer[T]) ChanOption[T] {
	return func(c *chanConfig[T]) { c.buf = buf }
}

// WithTransducer runs every put value through xform before buffering it.
// The transducer may suppress a value or expand it into several.
func WithTransducer[T any](xform xf.Transducer[T, T]) ChanOption[T] {
	return func(c *chanConfig[T]) { c.xform = xform }
}

// Chan is a buffered channel with an optional put-side transducer and a
// closed flag that only ever goes from false to true.
//
// Chan is not safe for concurrent use. Its state is only touched from the
// scheduler goroutine, or from a single goroutine when no scheduler runs.
type Chan[T any] struct {
	buf    Buffer[T]
	xform  xf.Transducer[T, T]
	sink   xf.Reducer[T]
	closed bool
}

// NewChan creates a channel over a Blocking buffer of the given capacity.
// A capacity of 0 is promoted to 1, so the first put never waits for a
// taker; a negative capacity makes the buffer Unbounded.
func NewChan[T any](capacity int, opts ...ChanOption[T]) *Chan[T] {
	var cfg chanConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.buf == nil {
		switch {
		case capacity == 0:
			capacity = 1
		case capacity < 0:
			capacity = Unbounded
		}
		cfg.buf = Blocking[T](capacity)
	}
	c := &Chan[T]{buf: cfg.buf, xform: cfg.xform}
	if c.xform != nil {
		c.sink = xf.New(nil, c.fill, nil)
	}
	return c
}

// fill is the terminal step of the put transducer. A Blocking buffer that
// fills up mid-expansion ends the reduction and rejects the remainder.
func (c *Chan[T]) fill(acc any, v T) xf.Reduction {
	if !c.buf.Put(v) && c.buf.Full() {
		return xf.Stop(acc)
	}
	return xf.Continue(acc)
}

// Put buffers v.
// It returns ErrNilValue for a nil v, ErrClosed once the channel is
// closed, and iox.ErrWouldBlock while the buffer is full.
func (c *Chan[T]) Put(v T) error {
	if isNil(v) {
		return ErrNilValue
	}
	if c.closed {
		return ErrClosed
	}
	if c.buf.Full() {
		return iox.ErrWouldBlock
	}
	if c.xform == nil {
		c.buf.Put(v)
		return nil
	}
	_, err := xf.Reduce(c.xform(c.sink), nil, []T{v})
	return err
}

// Take removes the oldest buffered value.
// Buffered values survive Close: it returns iox.ErrWouldBlock while the
// buffer is empty and the channel open, and ErrClosed once it is both
// empty and closed.
func (c *Chan[T]) Take() (T, error) {
	if v, ok := c.buf.Take(); ok {
		return v, nil
	}
	var zero T
	if c.closed {
		return zero, ErrClosed
	}
	return zero, iox.ErrWouldBlock
}

// CanPut reports whether the buffer accepts a put without waiting.
func (c *Chan[T]) CanPut() bool { return !c.buf.Full() }

// CanTake reports whether a value is buffered.
func (c *Chan[T]) CanTake() bool { return !c.buf.Empty() }

// Close marks the channel closed. Closing twice is a no-op.
func (c *Chan[T]) Close() { c.closed = true }

// Closed reports whether Close was called.
func (c *Chan[T]) Closed() bool { return c.closed }

// Len returns the number of buffered values.
func (c *Chan[T]) Len() int { return c.buf.Len() }
