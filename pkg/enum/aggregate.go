package enum

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ib-77/enumerio/pkg/fp"
)

// Min returns the smallest element. Panics on an empty Enum.
func Min[T cmp.Ordered](e Enum[T]) T {
	if e.Empty() {
		panic("enum: Min: enum is empty")
	}
	return slices.Min(e.data)
}

// Max returns the largest element. Panics on an empty Enum.
func Max[T cmp.Ordered](e Enum[T]) T {
	if e.Empty() {
		panic("enum: Max: enum is empty")
	}
	return slices.Max(e.data)
}

// MinMax returns the smallest and largest elements. Panics on an empty
// Enum.
func MinMax[T cmp.Ordered](e Enum[T]) (T, T) {
	if e.Empty() {
		panic("enum: MinMax: enum is empty")
	}
	return slices.Min(e.data), slices.Max(e.data)
}

// MinBy returns the element with the smallest key; the first such
// element wins on ties. Panics on an empty Enum.
func MinBy[T any, K cmp.Ordered](e Enum[T], key func(T) K) T {
	if e.Empty() {
		panic("enum: MinBy: enum is empty")
	}
	best := e.data[0]
	bestKey := key(best)
	for _, v := range e.data[1:] {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}
	return best
}

// MaxBy returns the element with the largest key; the first such element
// wins on ties. Panics on an empty Enum.
func MaxBy[T any, K cmp.Ordered](e Enum[T], key func(T) K) T {
	if e.Empty() {
		panic("enum: MaxBy: enum is empty")
	}
	best := e.data[0]
	bestKey := key(best)
	for _, v := range e.data[1:] {
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best
}

// MinMaxBy returns the elements with the smallest and largest keys.
// Panics on an empty Enum.
func MinMaxBy[T any, K cmp.Ordered](e Enum[T], key func(T) K) (T, T) {
	if e.Empty() {
		panic("enum: MinMaxBy: enum is empty")
	}
	return MinBy(e, key), MaxBy(e, key)
}

// Sum returns the sum of the elements, zero for an empty Enum.
func Sum[T fp.Number](e Enum[T]) T {
	var total T
	for _, v := range e.data {
		total += v
	}
	return total
}

// SumBy returns the sum of the mapped elements.
func SumBy[T any, N fp.Number](e Enum[T], mapper func(T) N) N {
	var total N
	for _, v := range e.data {
		total += mapper(v)
	}
	return total
}

// Prod returns the product of the elements, one for an empty Enum.
func Prod[T fp.Number](e Enum[T]) T {
	total := T(1)
	for _, v := range e.data {
		total *= v
	}
	return total
}

// ProdBy returns the product of the mapped elements.
func ProdBy[T any, N fp.Number](e Enum[T], mapper func(T) N) N {
	total := N(1)
	for _, v := range e.data {
		total *= mapper(v)
	}
	return total
}

// Sort returns the elements in ascending order. The sort is stable.
func Sort[T cmp.Ordered](e Enum[T]) Enum[T] {
	out := e.Values()
	slices.SortStableFunc(out, cmp.Compare)
	return wrap(out)
}

// SortBy returns the elements sorted ascending by key. The sort is
// stable, so elements with equal keys keep their relative order.
func SortBy[T any, K cmp.Ordered](e Enum[T], key func(T) K) Enum[T] {
	out := e.Values()
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return wrap(out)
}

// CountBy returns the number of elements satisfying pred.
func CountBy[T any](e Enum[T], pred func(T) bool) int {
	count := 0
	for _, v := range e.data {
		if pred(v) {
			count++
		}
	}
	return count
}

// Join concatenates string-like elements with sep.
func Join[T ~string](e Enum[T], sep string) string {
	parts := make([]string, len(e.data))
	for i, v := range e.data {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}

// MapJoin maps each element to a string and joins the results with sep.
func MapJoin[T any](e Enum[T], fn func(T) string, sep string) string {
	parts := make([]string, len(e.data))
	for i, v := range e.data {
		parts[i] = fn(v)
	}
	return strings.Join(parts, sep)
}
