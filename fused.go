// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import (
	"code.hybscloud.com/kont"
)

// TakeBind takes from ch and passes the result to f.
// Fuses Perform(Take[T]{Chan: ch}) + Bind.
func TakeBind[T, B any](ch *Chan[T], f func(Received[T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Take[T]{Chan: ch}), f)
}

// PutThen puts v on ch and then continues with next, whether or not the
// channel accepted v.
// Fuses Perform(Put[T]{...}) + Then.
func PutThen[T, B any](ch *Chan[T], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Put[T]{Chan: ch, Value: v}), next)
}

// PutBind puts v on ch and passes the acceptance flag to f.
// Fuses Perform(Put[T]{...}) + Bind.
func PutBind[T, B any](ch *Chan[T], v T, f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Put[T]{Chan: ch, Value: v}), f)
}

// CloseThen closes ch and then continues with next.
// Fuses Perform(Close[T]{Chan: ch}) + Then.
func CloseThen[T, B any](ch *Chan[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Close[T]{Chan: ch}), next)
}

// CloseDone closes ch and returns a.
// Fuses Perform(Close[T]{Chan: ch}) + Then + Pure.
func CloseDone[T, A any](ch *Chan[T], a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close[T]{Chan: ch}), kont.Pure(a))
}

// AltsBind selects one ready case and passes the selection to f.
// Fuses Perform(Alts{...}) + Bind.
func AltsBind[B any](cases []Case, f func(Selected) kont.Eff[B], opts ...AltsOption) kont.Eff[B] {
	return kont.Bind(kont.Perform(NewAlts(cases, opts...)), f)
}
