// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Step evaluates a process until its first channel operation.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](proc kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(proc)
}

// Advance evaluates the suspended operation once.
//
// On success (nil error) the suspension is consumed and the process
// advances to its next operation or completion.
// On iox.ErrWouldBlock the suspension is returned unconsumed and may be
// retried on a later turn; the channel is left untouched.
// Any other error ends the process: the suspension is discarded and nil is
// returned. This covers ErrNilValue and errors thrown with [Fail].
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	var zero R
	switch op := susp.Op().(type) {
	case chanDispatcher:
		v, err := op.DispatchChan()
		if iox.IsWouldBlock(err) {
			return zero, susp, err
		}
		if err != nil {
			susp.Discard()
			return zero, nil, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	case errorDispatcher:
		var ctx kont.ErrorContext[error]
		v, _ := op.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return zero, nil, ctx.Err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("csp: unhandled effect in Advance")
}
