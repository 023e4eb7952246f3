package enum

import (
	"reflect"

	"github.com/ib-77/enumerio/pkg/option"
	"github.com/ib-77/enumerio/pkg/result"
)

// MapTo returns a new Enum of fn applied to each element.
func MapTo[T, U any](e Enum[T], fn func(T) U) Enum[U] {
	out := make([]U, len(e.data))
	for i, v := range e.data {
		out[i] = fn(v)
	}
	return wrap(out)
}

// FlatMap maps each element to an Enum and concatenates the results by
// one level.
func FlatMap[T, U any](e Enum[T], fn func(T) Enum[U]) Enum[U] {
	out := make([]U, 0)
	for _, v := range e.data {
		out = append(out, fn(v).data...)
	}
	return wrap(out)
}

// FilterMap keeps only the Ok payloads of fn applied to each element,
// discarding Err elements entirely.
func FilterMap[T, U any](e Enum[T], fn func(T) result.Result[U]) Enum[U] {
	out := make([]U, 0)
	for _, v := range e.data {
		if r := fn(v); r.IsOk() {
			out = append(out, r.Unwrap())
		}
	}
	return wrap(out)
}

// FilterMapOption is FilterMap for Option-returning transforms.
func FilterMapOption[T, U any](e Enum[T], fn func(T) option.Option[U]) Enum[U] {
	out := make([]U, 0)
	for _, v := range e.data {
		if o := fn(v); o.IsSome() {
			out = append(out, o.Unwrap())
		}
	}
	return wrap(out)
}

// FindValue returns the first truthy value of fn applied to the
// elements, or def when every transformed value is falsy.
func FindValue[T, U any](e Enum[T], fn func(T) U, def U) U {
	for _, v := range e.data {
		if u := fn(v); Truthy(u) {
			return u
		}
	}
	return def
}

// FindIndex returns the position of the first element satisfying pred.
func FindIndex[T any](e Enum[T], pred func(T) bool) option.Option[int] {
	for i, v := range e.data {
		if pred(v) {
			return option.Some(i)
		}
	}
	return option.None[int]()
}

// Reduce folds the elements left to right into acc.
func Reduce[T, A any](e Enum[T], acc A, fn func(A, T) A) A {
	for _, v := range e.data {
		acc = fn(acc, v)
	}
	return acc
}

// Concat concatenates the inner Enums by one level.
func Concat[T any](e Enum[Enum[T]]) Enum[T] {
	total := 0
	for _, inner := range e.data {
		total += len(inner.data)
	}
	out := make([]T, 0, total)
	for _, inner := range e.data {
		out = append(out, inner.data...)
	}
	return wrap(out)
}

// Flatten recursively flattens nested Enums, slices and arrays held as
// elements; anything else passes through unchanged. Strings and other
// scalars are atomic and never recursed into.
func Flatten(e Enum[any]) Enum[any] {
	out := make([]any, 0, len(e.data))
	for _, item := range e.data {
		out = appendFlat(out, item)
	}
	return wrap(out)
}

func appendFlat(dst []any, item any) []any {
	if inner, ok := item.(interface{ anyValues() []any }); ok {
		for _, v := range inner.anyValues() {
			dst = appendFlat(dst, v)
		}
		return dst
	}
	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = appendFlat(dst, rv.Index(i).Interface())
		}
		return dst
	default:
		return append(dst, item)
	}
}

// Zip pairs up corresponding elements across the inner Enums, truncating
// to the shortest one: the i-th output holds the i-th element of every
// inner Enum, in order.
func Zip[T any](e Enum[Enum[T]]) Enum[Enum[T]] {
	if len(e.data) == 0 {
		return Of[Enum[T]]()
	}
	shortest := len(e.data[0].data)
	for _, inner := range e.data[1:] {
		if len(inner.data) < shortest {
			shortest = len(inner.data)
		}
	}
	out := make([]Enum[T], shortest)
	for i := 0; i < shortest; i++ {
		row := make([]T, len(e.data))
		for j, inner := range e.data {
			row[j] = inner.data[i]
		}
		out[i] = wrap(row)
	}
	return wrap(out)
}

// ZipWith zips the inner Enums and applies fn to each positional group.
func ZipWith[T, R any](e Enum[Enum[T]], fn func([]T) R) Enum[R] {
	zipped := Zip(e)
	out := make([]R, len(zipped.data))
	for i, row := range zipped.data {
		out[i] = fn(row.data)
	}
	return wrap(out)
}

// Zip2 pairs two Enums element-wise, truncating to the shorter one.
func Zip2[A, B any](a Enum[A], b Enum[B]) Enum[Pair[A, B]] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{Key: a.data[i], Value: b.data[i]}
	}
	return wrap(out)
}

// StarMap applies fn to each pair's unpacked components.
func StarMap[A, B, R any](e Enum[Pair[A, B]], fn func(A, B) R) Enum[R] {
	out := make([]R, len(e.data))
	for i, p := range e.data {
		out[i] = fn(p.Key, p.Value)
	}
	return wrap(out)
}

// Into materializes the elements through an external converter.
func Into[T, R any](e Enum[T], convert func([]T) R) R {
	return convert(e.Values())
}

// IntoBy maps the elements first, then materializes them through an
// external converter.
func IntoBy[T, U, R any](e Enum[T], mapper func(T) U, convert func([]U) R) R {
	return convert(MapTo(e, mapper).data)
}
