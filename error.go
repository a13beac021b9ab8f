// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"code.hybscloud.com/kont"
)

var (
	// ErrNilValue is returned when nil is put on a channel.
	// nil is reserved: it never travels through a channel.
	ErrNilValue = errors.New("csp: can't put nil on a channel")

	// ErrClosed is the closed sentinel: taking from a drained closed channel
	// or putting on a closed channel.
	ErrClosed = errors.New("csp: channel closed")

	// ErrDeadlock is returned by Exec when the process can never resume.
	ErrDeadlock = errors.New("csp: all processes are parked")
)

// ProcessError attributes an abort to the process that suffered it.
type ProcessError struct {
	PID ProcessID
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("csp: process %d aborted: %v", e.PID, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// PanicError carries a panic recovered while evaluating a process.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}

// Fail aborts the performing process with err.
// The scheduler logs the error and closes the process's result channel.
func Fail[A any](err error) kont.Eff[A] {
	return kont.ThrowError[error, A](err)
}

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// isNil reports whether v is a nil pointer, interface, func or chan.
// Nil slices and maps are ordinary empty values and may be put.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
