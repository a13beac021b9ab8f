// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world process to completion on a private scheduler and
// returns its final value. It returns ErrDeadlock when the process parks on
// a channel that nothing will ever serve, and a *ProcessError when the
// process aborts.
func Exec[R any](proc kont.Eff[R], opts ...Option) (R, error) {
	return execute(func() (R, *kont.Suspension[R]) { return kont.Step(proc) }, opts)
}

// ExecExpr is [Exec] for an Expr-world process.
func ExecExpr[R any](proc kont.Expr[R], opts ...Option) (R, error) {
	return execute(func() (R, *kont.Suspension[R]) { return Step(proc) }, opts)
}

func execute[R any](start func() (R, *kont.Suspension[R]), opts []Option) (R, error) {
	s := NewScheduler(opts...)
	var (
		result R
		err    error
		done   bool
	)
	spawn(s, start, nil, func(v R, e error) {
		result, err, done = v, e, true
	})
	s.RunUntilIdle()
	if !done {
		s.discardParked()
		var zero R
		return zero, ErrDeadlock
	}
	return result, err
}
