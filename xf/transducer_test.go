// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/csp/xf"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func into[In, Out any](t *testing.T, xform xf.Transducer[In, Out], source any) []Out {
	t.Helper()
	out, err := xf.Into([]Out{}, xform, source)
	require.NoError(t, err)
	return out
}

func isEven(n int) bool { return n%2 == 0 }

func TestStateless(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, into(t, xf.Map(strconv.Itoa), ints(3)))
	assert.Equal(t, []int{2, 4}, into(t, xf.Filter(isEven), ints(5)))
	assert.Equal(t, []int{1, 3, 5}, into(t, xf.Remove(isEven), ints(5)))
	assert.Equal(t, []int{0, 1, 9}, into(t, xf.Replace(map[int]int{2: 0, 3: 1, 4: 9}), []int{2, 3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4}, into(t, xf.Cat[int](), [][]int{{1, 2}, {}, {3, 4}}))
	assert.Equal(t, []string{"a", "b", "c"},
		into(t, xf.Mapcat(func(s string) []string { return strings.Split(s, ",") }), []string{"a,b", "c"}))
	assert.Equal(t, []int{1, 2, 3}, into(t, xf.Identity[int](), ints(3)))
}

func TestKeepForwardsResult(t *testing.T) {
	parse := xf.Keep(func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	assert.Equal(t, []int{1, 3}, into(t, parse, []string{"1", "x", "3"}))
}

func TestCatStopsWholeReduction(t *testing.T) {
	xform := xf.Compose(xf.Cat[int](), xf.Take[int](3))
	assert.Equal(t, []int{1, 2, 3}, into(t, xform, [][]int{{1, 2}, {3, 4}, {5}}))
}

func TestRandomSample(t *testing.T) {
	assert.Empty(t, into(t, xf.RandomSample[int](0), ints(100)))
	assert.Equal(t, ints(100), into(t, xf.RandomSample[int](1), ints(100)))
	got := into(t, xf.RandomSample[int](0.5), ints(2000))
	assert.InDelta(t, 1000, len(got), 200)
}

func TestTakeDrop(t *testing.T) {
	assert.Equal(t, []int{1, 2}, into(t, xf.Take[int](2), ints(5)))
	assert.Empty(t, into(t, xf.Take[int](0), ints(5)))
	assert.Equal(t, ints(3), into(t, xf.Take[int](10), ints(3)))
	assert.Equal(t, []int{4, 5}, into(t, xf.Drop[int](3), ints(5)))
	assert.Empty(t, into(t, xf.Drop[int](9), ints(5)))
}

func TestTakeStopsAfterNth(t *testing.T) {
	seen := 0
	counting := xf.Map(func(n int) int { seen++; return n })
	assert.Equal(t, []int{1, 2, 3}, into(t, xf.Compose(counting, xf.Take[int](3)), ints(10)))
	assert.Equal(t, 3, seen, "no input past the nth is pulled")
}

func TestTakeWhileDropWhile(t *testing.T) {
	small := func(n int) bool { return n < 3 }
	assert.Equal(t, []int{1, 2}, into(t, xf.TakeWhile(small), []int{1, 2, 3, 1}))
	assert.Equal(t, []int{3, 1}, into(t, xf.DropWhile(small), []int{1, 2, 3, 1}))
}

func TestTakeNth(t *testing.T) {
	assert.Equal(t, []int{3, 6, 9}, into(t, xf.TakeNth[int](3), ints(10)))
	assert.Panics(t, func() { xf.TakeNth[int](0) })
}

func TestPartitionBy(t *testing.T) {
	got := into(t, xf.PartitionBy(isEven), []int{1, 3, 2, 4, 5})
	assert.Equal(t, [][]int{{1, 3}, {2, 4}, {5}}, got)
	assert.Empty(t, into(t, xf.PartitionBy(isEven), []int{}))
}

func TestPartitionAll(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, into(t, xf.PartitionAll[int](2), ints(5)))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, into(t, xf.PartitionAll[int](2), ints(4)))
	assert.Panics(t, func() { xf.PartitionAll[int](0) })
}

func TestPartitionFlushRespectsStop(t *testing.T) {
	xform := xf.Compose(xf.PartitionAll[int](2), xf.Take[[]int](1))
	assert.Equal(t, [][]int{{1, 2}}, into(t, xform, ints(5)))
}

func TestDistinctDedupe(t *testing.T) {
	in := []int{1, 1, 2, 1, 3, 3, 2}
	assert.Equal(t, []int{1, 2, 3}, into(t, xf.Distinct[int](), in))
	assert.Equal(t, []int{1, 2, 1, 3, 2}, into(t, xf.Dedupe[int](), in))
}

func TestInterpose(t *testing.T) {
	assert.Equal(t, []string{"a", ",", "b", ",", "c"}, into(t, xf.Interpose(","), []string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", ","}, into(t, xf.Compose(xf.Interpose(","), xf.Take[string](2)), []string{"a", "b"}))
}

func TestIndexed(t *testing.T) {
	tag := xf.MapIndexed(func(i int, s string) string { return strconv.Itoa(i) + s })
	assert.Equal(t, []string{"0a", "1b"}, into(t, tag, []string{"a", "b"}))

	odd := xf.KeepIndexed(func(i int, s string) (string, bool) { return s, i%2 == 1 })
	assert.Equal(t, []string{"b", "d"}, into(t, odd, []string{"a", "b", "c", "d"}))
}

func TestStatefulFreshPerApplication(t *testing.T) {
	take2 := xf.Take[int](2)
	assert.Equal(t, []int{1, 2}, into(t, take2, ints(5)))
	assert.Equal(t, []int{1, 2}, into(t, take2, ints(5)))

	dedupe := xf.Dedupe[int]()
	assert.Equal(t, []int{1}, into(t, dedupe, []int{1, 1}))
	assert.Equal(t, []int{1}, into(t, dedupe, []int{1}))
}

func TestComposeOrder(t *testing.T) {
	inc := xf.Map(func(n int) int { return n + 1 })
	double := xf.Map(func(n int) int { return n * 2 })
	assert.Equal(t, []int{4}, into(t, xf.Compose(inc, double), []int{1}))
	assert.Equal(t, []int{3}, into(t, xf.Compose(double, inc), []int{1}))
	assert.Equal(t, []int{4}, into(t, xf.Chain(inc, double), []int{1}))
	assert.Equal(t, []int{1}, into(t, xf.Chain[int](), []int{1}))
}

func TestLiftCompComplement(t *testing.T) {
	assert.Equal(t, []int{2, 3}, into(t, xf.Lift(func(n int) int { return n + 1 }), []int{1, 2}))

	f := xf.Comp(strconv.Itoa, func(n int) int { return n * 10 })
	assert.Equal(t, "30", f(3))
	assert.True(t, xf.Complement(isEven)(3))
}
