package enum

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/enumerio/pkg/result"
)

// Enum is an ordered, duplicate-permitting sequence of elements with
// value semantics: construction copies the input and combinators return
// new containers.
type Enum[T any] struct {
	data []T
}

// From builds an Enum from a slice, copying the elements.
func From[T any](items []T) Enum[T] {
	data := make([]T, len(items))
	copy(data, items)
	return Enum[T]{data: data}
}

// Of builds an Enum from its arguments.
func Of[T any](items ...T) Enum[T] {
	return From(items)
}

// FromSeq drains a finite iterator into an Enum.
func FromSeq[T any](seq iter.Seq[T]) Enum[T] {
	var data []T
	for v := range seq {
		data = append(data, v)
	}
	return Enum[T]{data: data}
}

// Range builds an Enum of the integers in the half-open interval [lo, hi).
func Range(lo, hi int) Enum[int] {
	if hi < lo {
		return Enum[int]{}
	}
	data := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		data = append(data, i)
	}
	return Enum[int]{data: data}
}

// wrap adopts a freshly allocated slice without copying.
func wrap[T any](data []T) Enum[T] {
	return Enum[T]{data: data}
}

func (e Enum[T]) Len() int {
	return len(e.data)
}

func (e Enum[T]) Empty() bool {
	return len(e.data) == 0
}

// Values copies the elements out into a plain slice.
func (e Enum[T]) Values() []T {
	out := make([]T, len(e.data))
	copy(out, e.data)
	return out
}

// Seq returns an iterator over the elements in order.
func (e Enum[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range e.data {
			if !yield(v) {
				return
			}
		}
	}
}

// At returns the element at index, or def when the index is out of
// range. A negative index counts from the tail.
func (e Enum[T]) At(index int, def T) T {
	if i, ok := e.norm(index); ok {
		return e.data[i]
	}
	return def
}

// Fetch returns the element at index as Ok, or Err when the index is out
// of range. A negative index counts from the tail.
func (e Enum[T]) Fetch(index int) result.Result[T] {
	if i, ok := e.norm(index); ok {
		return result.Ok(e.data[i])
	}
	return result.Errf[T]("enum: fetch: invalid index: %d", index)
}

// All reports whether every element satisfies pred. A nil pred tests
// element truthiness directly. Vacuously true on an empty Enum.
func (e Enum[T]) All(pred func(T) bool) bool {
	if pred == nil {
		pred = Truthy[T]
	}
	for _, v := range e.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies pred. A nil pred
// tests element truthiness directly.
func (e Enum[T]) Any(pred func(T) bool) bool {
	if pred == nil {
		pred = Truthy[T]
	}
	for _, v := range e.data {
		if pred(v) {
			return true
		}
	}
	return false
}

// Each invokes proc for each element, for its side effects.
func (e Enum[T]) Each(proc func(T)) {
	for _, v := range e.data {
		proc(v)
	}
}

// Tap invokes fn with the Enum for its side effects and returns the
// Enum unchanged.
func (e Enum[T]) Tap(fn func(Enum[T])) Enum[T] {
	fn(e)
	return e
}

// Filter keeps the elements satisfying pred, preserving order.
func (e Enum[T]) Filter(pred func(T) bool) Enum[T] {
	out := make([]T, 0)
	for _, v := range e.data {
		if pred(v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Reject drops the elements satisfying pred, preserving order.
func (e Enum[T]) Reject(pred func(T) bool) Enum[T] {
	return e.Filter(func(v T) bool { return !pred(v) })
}

// Find returns the first element satisfying pred, or def when none does.
func (e Enum[T]) Find(pred func(T) bool, def T) T {
	for _, v := range e.data {
		if pred(v) {
			return v
		}
	}
	return def
}

func (e Enum[T]) String() string {
	return fmt.Sprintf("Enum(%v)", e.data)
}

// norm maps a possibly negative index onto the buffer; ok reports range.
func (e Enum[T]) norm(index int) (int, bool) {
	i := index
	if i < 0 {
		i += len(e.data)
	}
	if i < 0 || i >= len(e.data) {
		return 0, false
	}
	return i, true
}

// anyValues erases the element type, see Flatten.
func (e Enum[T]) anyValues() []any {
	out := make([]any, len(e.data))
	for i, v := range e.data {
		out[i] = v
	}
	return out
}

// Truthy reports whether v is a non-zero value of its type: false for
// zero numbers, empty strings, nil or empty slices and maps, and nil
// pointers, interfaces, funcs and channels.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	case reflect.Slice, reflect.Map:
		return !rv.IsNil() && rv.Len() > 0
	}
	return !rv.IsZero()
}
