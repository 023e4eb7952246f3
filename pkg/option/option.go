package option

import (
	"fmt"
	"reflect"
)

// Option is a two-variant value: Some carrying a payload, or None.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromValue makes an Option from v, returning None when v is the absent
// sentinel (a nil pointer, interface, map, slice, func or channel) and
// Some(v) otherwise.
func FromValue[T any](v T) Option[T] {
	if isNilValue(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr makes an Option from a pointer, dereferencing non-nil pointers.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNothing() bool {
	return !o.present
}

// Unwrap returns the payload and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: called Unwrap on None")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Map transforms the payload with fn when Some; None passes through.
// For transforms that change the payload type use the package-level Map.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.present {
		return Some(fn(o.value))
	}
	return o
}

// Bind applies fn, which itself returns an Option, flattening one level.
func (o Option[T]) Bind(fn func(T) Option[T]) Option[T] {
	if o.present {
		return fn(o.value)
	}
	return o
}

// Filter keeps Some values satisfying pred, everything else becomes None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "Nothing"
}

// Map applies a type-changing transformation to the payload.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Bind applies a type-changing transformation that itself returns an Option.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// Flatten collapses a nested Option by one level.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return None[T]()
}

// Equal reports whether two Options have the same variant and, for Some,
// equal payloads. All None values are interchangeable.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
