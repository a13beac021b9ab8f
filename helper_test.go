// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"

	"code.hybscloud.com/csp"
)

// stepExpr drives a process via Step+Advance until it completes or parks.
// It returns the pending suspension when the process parked.
func stepExpr[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R], error) {
	result, susp := csp.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = csp.Advance(susp)
		if err != nil {
			return result, susp, err
		}
	}
	return result, nil, nil
}

// drain takes every buffered value from ch.
func drain[T any](ch *csp.Chan[T]) []T {
	var out []T
	for {
		v, err := ch.Take()
		if err != nil {
			return out
		}
		out = append(out, v)
	}
}

// mustTake takes one value from ch or fails the test.
func mustTake[T any](tb testing.TB, ch *csp.Chan[T]) T {
	tb.Helper()
	v, err := ch.Take()
	if err != nil {
		tb.Fatalf("Take: %v", err)
	}
	return v
}

// isParked reports whether err is the park signal.
func isParked(err error) bool { return iox.IsWouldBlock(err) }
