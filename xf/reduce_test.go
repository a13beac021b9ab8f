// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/csp"
	"code.hybscloud.com/csp/xf"
)

func sum() xf.Reducer[int] {
	return xf.Wrap(func(acc, n int) int { return acc + n })
}

type window []int

func (w window) Len() int        { return len(w) }
func (w window) Index(i int) int { return w[i] }

func TestReduceShapes(t *testing.T) {
	var d csp.Deque[int]
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	cases := map[string]any{
		"slice":     []int{1, 2, 3},
		"indexable": window{1, 2, 3},
		"map":       map[string]int{"b": 2, "a": 1, "c": 3},
		"seq":       slices.Values([]int{1, 2, 3}),
		"func":      func(yield func(int) bool) { _ = yield(1) && yield(2) && yield(3) },
		"iterable":  &d,
	}
	for name, coll := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := xf.Reduce(sum(), 0, coll)
			require.NoError(t, err)
			assert.Equal(t, 6, got)
		})
	}
}

func TestReduceMapKeyOrder(t *testing.T) {
	got, err := xf.Reduce(xf.Append[string](), []string{}, map[string]string{"z": "c", "m": "b", "a": "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestReduceString(t *testing.T) {
	runes, err := xf.Reduce(xf.Append[rune](), []rune{}, "héllo")
	require.NoError(t, err)
	assert.Equal(t, []rune("héllo"), runes)

	chars, err := xf.Reduce(xf.Append[string](), []string{}, "ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, chars)

	_, err = xf.Reduce(sum(), 0, "12")
	assert.ErrorIs(t, err, xf.ErrNotReducible)
}

func TestReduceNotReducible(t *testing.T) {
	_, err := xf.Reduce(sum(), 0, 42)
	require.ErrorIs(t, err, xf.ErrNotReducible)
	var nre *xf.NotReducibleError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, 42, nre.Value)
	assert.Contains(t, err.Error(), "42")
}

func TestReduceStopsEarly(t *testing.T) {
	calls := 0
	rf := xf.New(nil, func(acc any, n int) xf.Reduction {
		calls++
		if n == 3 {
			return xf.Stop(acc.(int) + n)
		}
		return xf.Continue(acc.(int) + n)
	}, nil)

	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	got, err := xf.Reduce(rf, 0, seq)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Equal(t, 3, calls)
}

func TestReduceAppliesResult(t *testing.T) {
	rf := xf.New(func() any { return 0 },
		func(acc any, n int) xf.Reduction { return xf.Continue(acc.(int) + n) },
		func(acc any) any { return acc.(int) * 10 })
	got, err := xf.Reduce(rf, rf.Init(), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestWrapHasNoInit(t *testing.T) {
	assert.PanicsWithValue(t, "xf: there is no init for a wrapped reducer", func() { sum().Init() })
}

func TestUnwrap(t *testing.T) {
	acc, stopped := xf.Unwrap(xf.Continue(1))
	assert.Equal(t, 1, acc)
	assert.False(t, stopped)
	acc, stopped = xf.Unwrap(xf.Stop(2))
	assert.Equal(t, 2, acc)
	assert.True(t, stopped)
}
