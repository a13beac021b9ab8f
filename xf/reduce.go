// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xf

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrNotReducible is matched by every [*NotReducibleError].
var ErrNotReducible = errors.New("xf: not a reducible collection")

// NotReducibleError reports a collection whose shape Reduce does not know.
type NotReducibleError struct {
	Value any
}

func (e *NotReducibleError) Error() string {
	return fmt.Sprintf("xf: %v (%T) is not a reducible collection", e.Value, e.Value)
}

// Is reports whether target is ErrNotReducible.
func (e *NotReducibleError) Is(target error) bool { return target == ErrNotReducible }

// Indexable is a random-access sequence.
type Indexable[T any] interface {
	Len() int
	Index(i int) T
}

// Iterable is a collection that can range over its values.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// folder runs a left fold and reports whether a step stopped it.
type folder[T any] func(rf Reducer[T], acc any) (any, bool)

// Reduce folds coll into init with rf, left to right, stopping as soon as a
// step returns Stop, and returns rf.Result of the final accumulator.
//
// The collection shape is resolved once per call: string (per rune; T must
// accept a rune or a one-character string), []T or [Indexable], map[string]T
// (values in ascending key order), and iter.Seq[T], func(func(T) bool) or
// [Iterable]. Any other value returns a [*NotReducibleError].
func Reduce[T any](rf Reducer[T], init any, coll any) (any, error) {
	fold, err := folderOf[T](coll)
	if err != nil {
		return nil, err
	}
	acc, _ := fold(rf, init)
	return rf.Result(acc), nil
}

func folderOf[T any](coll any) (folder[T], error) {
	switch c := coll.(type) {
	case string:
		return stringFolder[T](c)
	case []T:
		return seqFolder(slices.Values(c)), nil
	case Indexable[T]:
		return indexFolder(c), nil
	case map[string]T:
		return keyedFolder(c), nil
	case iter.Seq[T]:
		return seqFolder(c), nil
	case func(func(T) bool):
		return seqFolder(iter.Seq[T](c)), nil
	case Iterable[T]:
		return seqFolder(c.All()), nil
	}
	return nil, &NotReducibleError{Value: coll}
}

func seqFolder[T any](seq iter.Seq[T]) folder[T] {
	return func(rf Reducer[T], acc any) (any, bool) {
		for v := range seq {
			next, stopped := Unwrap(rf.Step(acc, v))
			acc = next
			if stopped {
				return acc, true
			}
		}
		return acc, false
	}
}

func indexFolder[T any](c Indexable[T]) folder[T] {
	return func(rf Reducer[T], acc any) (any, bool) {
		for i := range c.Len() {
			next, stopped := Unwrap(rf.Step(acc, c.Index(i)))
			acc = next
			if stopped {
				return acc, true
			}
		}
		return acc, false
	}
}

func keyedFolder[T any](m map[string]T) folder[T] {
	keys := slices.Sorted(maps.Keys(m))
	return func(rf Reducer[T], acc any) (any, bool) {
		for _, k := range keys {
			next, stopped := Unwrap(rf.Step(acc, m[k]))
			acc = next
			if stopped {
				return acc, true
			}
		}
		return acc, false
	}
}

// stringFolder yields runes when T accepts a rune, otherwise one-character
// strings when T accepts a string.
func stringFolder[T any](s string) (folder[T], error) {
	var conv func(r rune) T
	if _, ok := any(rune(0)).(T); ok {
		conv = func(r rune) T { return any(r).(T) }
	} else if _, ok := any("").(T); ok {
		conv = func(r rune) T { return any(string(r)).(T) }
	} else {
		return nil, &NotReducibleError{Value: s}
	}
	return func(rf Reducer[T], acc any) (any, bool) {
		for _, r := range s {
			next, stopped := Unwrap(rf.Step(acc, conv(r)))
			acc = next
			if stopped {
				return acc, true
			}
		}
		return acc, false
	}, nil
}
