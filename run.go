// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"errors"

	"code.hybscloud.com/kont"
)

// Run runs two Cont-world processes side by side on a private scheduler and
// returns both results. The processes typically talk over channels created
// by the caller. It returns ErrDeadlock if either process never finishes.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B], opts ...Option) (A, B, error) {
	return RunExpr(Reify(a), Reify(b), opts...)
}

// RunExpr runs two Expr-world processes side by side on a private scheduler
// and returns both results.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B], opts ...Option) (A, B, error) {
	s := NewScheduler(opts...)
	var (
		resultA      A
		resultB      B
		errA, errB   error
		doneA, doneB bool
	)
	spawn(s, func() (A, *kont.Suspension[A]) { return Step(a) }, nil, func(v A, err error) {
		resultA, errA, doneA = v, err, true
	})
	spawn(s, func() (B, *kont.Suspension[B]) { return Step(b) }, nil, func(v B, err error) {
		resultB, errB, doneB = v, err, true
	})
	s.RunUntilIdle()
	if !doneA || !doneB {
		s.discardParked()
		return resultA, resultB, ErrDeadlock
	}
	return resultA, resultB, errors.Join(errA, errB)
}
