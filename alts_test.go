// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp_test

import (
	"testing"
	"time"

	"code.hybscloud.com/kont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/csp"
)

func selected(tb testing.TB, step csp.StepFunc) csp.Selected {
	tb.Helper()
	v, err := step()
	require.NoError(tb, err)
	return v.(csp.Selected)
}

func TestAltsPriorityDeterministic(t *testing.T) {
	a := csp.NewChan[int](4)
	b := csp.NewChan[int](4)
	for i := range 4 {
		a.Put(i)
		b.Put(10 + i)
	}
	cases := []csp.Case{csp.TakeCase(a), csp.TakeCase(b)}
	for i := range 4 {
		sel := selected(t, csp.AltsStep(cases, csp.Priority()))
		assert.Equal(t, 0, sel.Index)
		assert.Equal(t, i, sel.Value)
		assert.True(t, sel.OK)
	}
	sel := selected(t, csp.AltsStep(cases, csp.Priority()))
	assert.Equal(t, 1, sel.Index)
	assert.Equal(t, 10, sel.Value)
}

func TestAltsRandomIsUniform(t *testing.T) {
	const n, trials = 3, 3000
	chans := make([]*csp.Chan[int], n)
	cases := make([]csp.Case, n)
	for i := range chans {
		chans[i] = csp.NewChan[int](-1)
		cases[i] = csp.TakeCase(chans[i])
		for j := range trials {
			chans[i].Put(j)
		}
	}
	counts := make([]int, n)
	for range trials {
		counts[selected(t, csp.AltsStep(cases)).Index]++
	}
	for i, c := range counts {
		assert.InDelta(t, trials/n, c, trials/n/4, "case %d chosen %d times", i, c)
	}
}

func TestAltsDefault(t *testing.T) {
	a := csp.NewChan[int](1)
	b := csp.NewChan[string](1)
	b.Put("full")
	cases := []csp.Case{csp.TakeCase(a), csp.PutCase(b, "x")}

	sel := selected(t, csp.AltsStep(cases, csp.Default("idle")))
	assert.True(t, sel.Default())
	assert.Equal(t, -1, sel.Index)
	assert.Equal(t, "idle", sel.Value)
	assert.Nil(t, sel.Case)
	assert.Equal(t, 1, b.Len(), "default must not touch channels")
}

func TestAltsParks(t *testing.T) {
	a := csp.NewChan[int](1)
	step := csp.AltsStep([]csp.Case{csp.TakeCase(a)})
	_, err := step()
	assert.True(t, isParked(err))

	a.Put(3)
	sel := selected(t, step)
	assert.Equal(t, 3, sel.Value)
}

func TestAltsPutCase(t *testing.T) {
	out := csp.NewChan[string](1)
	sel := selected(t, csp.AltsStep([]csp.Case{csp.PutCase(out, "hi")}))
	assert.Equal(t, 0, sel.Index)
	assert.Nil(t, sel.Value)
	assert.True(t, sel.OK)
	assert.Equal(t, "hi", mustTake(t, out))

	out.Close()
	sel = selected(t, csp.AltsStep([]csp.Case{csp.PutCase(out, "late")}))
	assert.False(t, sel.OK)
}

func TestAltsClosedTakeIsReady(t *testing.T) {
	a := csp.NewChan[int](1)
	done := csp.NewChan[struct{}](1)
	done.Close()
	sel := selected(t, csp.AltsStep([]csp.Case{csp.TakeCase(a), csp.TakeCase(done)}))
	assert.Equal(t, 1, sel.Index)
	assert.False(t, sel.OK)
}

func TestAltsTimeoutArm(t *testing.T) {
	skipRace(t)
	s := csp.NewScheduler(csp.WithLogger(nil))
	never := csp.NewChan[int](1)
	timeout := s.Timeout(10 * time.Millisecond)

	result := csp.Go(s, csp.AltsBind([]csp.Case{csp.TakeCase(never), csp.TakeCase(timeout)},
		func(sel csp.Selected) kont.Eff[int] { return kont.Pure(sel.Index) }))
	if parked := s.RunUntilIdle(); parked != 0 {
		t.Fatalf("%d processes left parked", parked)
	}
	assert.Equal(t, 1, mustTake(t, result))
}
