package enum

import "fmt"

// Freq counts the occurrences of each distinct element. Keys appear in
// first-encounter order.
func Freq[T comparable](e Enum[T]) Map[T, int] {
	return FreqBy(e, func(v T) T { return v })
}

// FreqBy counts the occurrences of each distinct key. Keys appear in
// first-encounter order.
func FreqBy[T any, K comparable](e Enum[T], key func(T) K) Map[K, int] {
	m := NewMap[K, int]()
	for _, v := range e.data {
		k := key(v)
		m = m.Put(k, m.Get(k).UnwrapOr(0)+1)
	}
	return m
}

// GroupBy groups the elements by keyFn into a Map from key to the Enum
// of elements with that key. Keys appear in first-encounter order and
// elements keep their encounter order within each group.
func GroupBy[T any, K comparable](e Enum[T], keyFn func(T) K) Map[K, Enum[T]] {
	return GroupByMap(e, keyFn, func(v T) T { return v })
}

// GroupByMap groups the elements by keyFn, transforming each grouped
// element with valFn.
func GroupByMap[T any, K comparable, V any](e Enum[T], keyFn func(T) K, valFn func(T) V) Map[K, Enum[V]] {
	keys := make([]K, 0)
	groups := make(map[K][]V, len(e.data))
	for _, v := range e.data {
		k := keyFn(v)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], valFn(v))
	}
	m := Map[K, Enum[V]]{keys: keys, entries: make(map[K]Enum[V], len(keys))}
	for k, vs := range groups {
		m.entries[k] = wrap(vs)
	}
	return m
}

// PluckKey extracts the value under key from each mapping element.
// Panics when an element lacks the key.
func PluckKey[K comparable, V any](e Enum[map[K]V], key K) Enum[V] {
	out := make([]V, len(e.data))
	for i, m := range e.data {
		v, ok := m[key]
		if !ok {
			panic(fmt.Sprintf("enum: PluckKey: missing key: %v", key))
		}
		out[i] = v
	}
	return wrap(out)
}

// PluckKeys extracts the values under keys from each mapping element,
// one tuple per element. Panics when an element lacks any of the keys.
func PluckKeys[K comparable, V any](e Enum[map[K]V], keys ...K) Enum[[]V] {
	out := make([][]V, len(e.data))
	for i, m := range e.data {
		row := make([]V, len(keys))
		for j, key := range keys {
			v, ok := m[key]
			if !ok {
				panic(fmt.Sprintf("enum: PluckKeys: missing key: %v", key))
			}
			row[j] = v
		}
		out[i] = row
	}
	return wrap(out)
}

// PluckAt extracts the value at index from each sequence element. A
// negative index counts from the element's tail. Panics when an element
// is too short.
func PluckAt[V any](e Enum[[]V], index int) Enum[V] {
	out := make([]V, len(e.data))
	for i, row := range e.data {
		out[i] = pluckIndex(row, index)
	}
	return wrap(out)
}

// PluckAts extracts the values at indices from each sequence element,
// one tuple per element.
func PluckAts[V any](e Enum[[]V], indices ...int) Enum[[]V] {
	out := make([][]V, len(e.data))
	for i, row := range e.data {
		picked := make([]V, len(indices))
		for j, index := range indices {
			picked[j] = pluckIndex(row, index)
		}
		out[i] = picked
	}
	return wrap(out)
}

func pluckIndex[V any](row []V, index int) V {
	i := index
	if i < 0 {
		i += len(row)
	}
	if i < 0 || i >= len(row) {
		panic(fmt.Sprintf("enum: pluck: index out of range: %d", index))
	}
	return row[i]
}
