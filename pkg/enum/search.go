package enum

// Member reports whether element is present in the Enum.
func Member[T comparable](e Enum[T], element T) bool {
	for _, v := range e.data {
		if v == element {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first occurrence of element, or -1
// when the element is absent.
func IndexOf[T comparable](e Enum[T], element T) int {
	for i, v := range e.data {
		if v == element {
			return i
		}
	}
	return -1
}

// Uniq removes duplicate elements, keeping the first occurrence of each
// and preserving the relative order of the kept elements.
func Uniq[T comparable](e Enum[T]) Enum[T] {
	return UniqBy(e, func(v T) T { return v })
}

// UniqBy removes elements with duplicate keys, keeping the first
// occurrence per distinct key and preserving relative order.
func UniqBy[T any, K comparable](e Enum[T], key func(T) K) Enum[T] {
	seen := make(map[K]struct{}, len(e.data))
	out := make([]T, 0)
	for _, v := range e.data {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return wrap(out)
}

// Equal reports whether two Enums hold equal elements in the same order.
func Equal[T comparable](a, b Enum[T]) bool {
	return EqualSlice(a, b.data)
}

// EqualSlice compares an Enum with a plain slice element by element,
// order sensitive.
func EqualSlice[T comparable](e Enum[T], items []T) bool {
	if len(e.data) != len(items) {
		return false
	}
	for i, v := range e.data {
		if v != items[i] {
			return false
		}
	}
	return true
}
