// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

import (
	"fmt"
	"reflect"
)

// Transduce applies xform to rf and reduces coll with the result.
// The initial accumulator is init[0] when given, otherwise xform(rf).Init().
// Type inference needs A when init is omitted: Transduce[[]int](...).
func Transduce[A, In, Out any](xform Transducer[In, Out], rf Reducer[Out], coll any, init ...A) (A, error) {
	var zero A
	r := xform(rf)
	var acc any
	if len(init) > 0 {
		acc = init[0]
	} else {
		acc = r.Init()
	}
	out, err := Reduce(r, acc, coll)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	res, ok := out.(A)
	if !ok {
		return zero, fmt.Errorf("xf: accumulator is %T, want %T", out, zero)
	}
	return res, nil
}

// Pair is a key-value input for [Into] a map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P returns the Pair (k, v).
func P[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{k, v} }

func (p Pair[K, V]) insert(m any) {
	if mm, ok := m.(map[K]V); ok {
		mm[p.Key] = p.Value
		return
	}
	reflect.ValueOf(m).SetMapIndex(reflect.ValueOf(&p.Key).Elem(), reflect.ValueOf(&p.Value).Elem())
}

// fits reports whether t is a map type keyed by K holding V.
func (Pair[K, V]) fits(t reflect.Type) bool {
	return t.Key() == reflect.TypeFor[K]() && t.Elem() == reflect.TypeFor[V]()
}

type entry interface {
	insert(m any)
	fits(t reflect.Type) bool
}

// Into reduces source through xform into dest and returns the populated
// dest. The terminal step follows the shape of dest:
//
//   - string: appends each output's text (runes as characters)
//   - []Out: appends each output
//   - map[K]V: inserts each output, which must be a Pair[K, V] with the
//     map's key and value types
//
// Any other dest is returned unchanged.
func Into[D, In, Out any](dest D, xform Transducer[In, Out], source any) (D, error) {
	var rf Reducer[Out]
	switch any(dest).(type) {
	case string:
		rf = Wrap(func(s string, out Out) string { return s + text(out) })
	case []Out:
		rf = Wrap(func(s []Out, out Out) []Out { return append(s, out) })
	default:
		m := reflect.ValueOf(dest)
		if m.Kind() != reflect.Map {
			return dest, nil
		}
		var zero Out
		e, ok := any(zero).(entry)
		if !ok {
			return dest, fmt.Errorf("xf: into %T needs Pair outputs, got %T", dest, zero)
		}
		if !e.fits(m.Type()) {
			return dest, fmt.Errorf("xf: into %T cannot hold %T outputs", dest, zero)
		}
		if m.IsNil() {
			dest = reflect.MakeMap(m.Type()).Interface().(D)
		}
		rf = New(nil, func(acc any, out Out) Reduction {
			any(out).(entry).insert(acc)
			return Continue(acc)
		}, nil)
	}
	return Transduce(xform, rf, source, dest)
}

func text(v any) string {
	switch t := v.(type) {
	case rune:
		return string(t)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
