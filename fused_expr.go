// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is boxed once so fused constructors don't allocate it.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// exprPerformBind suspends on op and hands its resumption to f.
// The frames are pooled: the result must be evaluated at most once.
func exprPerformBind[A, B any](op kont.Operation, f func(A) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		result := f(a.(A))
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// exprPerformThen suspends on op, drops its resumption and continues with next.
func exprPerformThen[B any](op kont.Operation, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprTakeBind takes from ch and passes the result to f.
// Fuses ExprPerform(Take[T]{Chan: ch}) + ExprBind.
func ExprTakeBind[T, B any](ch *Chan[T], f func(Received[T]) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(Take[T]{Chan: ch}, f)
}

// ExprPutThen puts v on ch and then continues with next.
// Fuses ExprPerform(Put[T]{...}) + ExprThen.
func ExprPutThen[T, B any](ch *Chan[T], v T, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(Put[T]{Chan: ch, Value: v}, next)
}

// ExprPutBind puts v on ch and passes the acceptance flag to f.
func ExprPutBind[T, B any](ch *Chan[T], v T, f func(bool) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(Put[T]{Chan: ch, Value: v}, f)
}

// ExprCloseThen closes ch and then continues with next.
func ExprCloseThen[T, B any](ch *Chan[T], next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(Close[T]{Chan: ch}, next)
}

// ExprCloseDone closes ch and returns a.
// Fuses ExprPerform(Close[T]{Chan: ch}) + ExprThen + ExprReturn.
func ExprCloseDone[T, A any](ch *Chan[T], a A) kont.Expr[A] {
	return exprPerformThen(Close[T]{Chan: ch}, kont.Expr[A]{Value: a, Frame: exprReturnFrame})
}

// ExprAltsBind selects one ready case and passes the selection to f.
func ExprAltsBind[B any](cases []Case, f func(Selected) kont.Expr[B], opts ...AltsOption) kont.Expr[B] {
	return exprPerformBind(NewAlts(cases, opts...), f)
}
