package enum

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/enumerio/pkg/option"
)

// Map is a key-unique associative container that preserves insertion
// order for iteration. Like Enum it has value semantics: combinators
// return new Maps and never mutate the receiver.
type Map[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

func NewMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{entries: make(map[K]V)}
}

// MapOf builds a Map from pairs in order; a repeated key replaces the
// value but keeps the key's original position.
func MapOf[K comparable, V any](pairs ...Pair[K, V]) Map[K, V] {
	m := NewMap[K, V]()
	for _, p := range pairs {
		m.put(p.Key, p.Value)
	}
	return m
}

// MapFrom builds a Map from a plain Go map. Go leaves map iteration
// order unspecified, so the insertion order of the result is fixed but
// arbitrary; use MapOf or ToMap when the order matters.
func MapFrom[K comparable, V any](src map[K]V) Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range src {
		m.put(k, v)
	}
	return m
}

// ToMap collects (key, value) pairs into a Map; a repeated key replaces
// the value but keeps the key's first position.
func ToMap[K comparable, V any](e Enum[Pair[K, V]]) Map[K, V] {
	return MapOf(e.data...)
}

func (m Map[K, V]) Len() int {
	return len(m.keys)
}

func (m Map[K, V]) Empty() bool {
	return len(m.keys) == 0
}

func (m Map[K, V]) HasKey(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the value under key, or None when the key is absent.
func (m Map[K, V]) Get(key K) option.Option[V] {
	if v, ok := m.entries[key]; ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Put returns a new Map with key set to value. An existing key keeps its
// position; a new key is appended.
func (m Map[K, V]) Put(key K, value V) Map[K, V] {
	out := m.clone()
	out.put(key, value)
	return out
}

// Delete returns a new Map without key; an absent key is silently
// ignored.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	return m.Drop(key)
}

// Drop returns a new Map without the given keys; absent keys are
// silently ignored.
func (m Map[K, V]) Drop(keys ...K) Map[K, V] {
	dropped := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		dropped[k] = struct{}{}
	}
	return m.Filter(func(k K, _ V) bool {
		_, ok := dropped[k]
		return !ok
	})
}

// Take projects to a sub-Map of the given keys that exist, in the
// receiver's iteration order; missing requested keys are silently
// skipped.
func (m Map[K, V]) Take(keys ...K) Map[K, V] {
	wanted := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}
	return m.Filter(func(k K, _ V) bool {
		_, ok := wanted[k]
		return ok
	})
}

// Filter keeps the pairs satisfying pred, preserving relative order.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	out := NewMap[K, V]()
	for _, k := range m.keys {
		if v := m.entries[k]; pred(k, v) {
			out.put(k, v)
		}
	}
	return out
}

// Reject drops the pairs satisfying pred, preserving relative order.
func (m Map[K, V]) Reject(pred func(K, V) bool) Map[K, V] {
	return m.Filter(func(k K, v V) bool { return !pred(k, v) })
}

// Keys returns the keys as an Enum, in iteration order.
func (m Map[K, V]) Keys() Enum[K] {
	return From(m.keys)
}

// Values returns the values as an Enum, in iteration order.
func (m Map[K, V]) Values() Enum[V] {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.entries[k]
	}
	return wrap(out)
}

// Pairs returns the (key, value) pairs as an Enum, in iteration order.
func (m Map[K, V]) Pairs() Enum[Pair[K, V]] {
	out := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Pair[K, V]{Key: k, Value: m.entries[k]}
	}
	return wrap(out)
}

// Each invokes proc for each pair in iteration order.
func (m Map[K, V]) Each(proc func(K, V)) {
	for _, k := range m.keys {
		proc(k, m.entries[k])
	}
}

// Seq returns an iterator over the pairs in iteration order.
func (m Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

func (m Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Map(")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, m.entries[k])
	}
	b.WriteString(")")
	return b.String()
}

func (m Map[K, V]) clone() Map[K, V] {
	out := Map[K, V]{
		keys:    make([]K, len(m.keys)),
		entries: make(map[K]V, len(m.entries)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.entries {
		out.entries[k] = v
	}
	return out
}

// put mutates in place; only for freshly built Maps.
func (m *Map[K, V]) put(key K, value V) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// MapPairs applies a two-argument transform to every pair, returning the
// results as an Enum in iteration order.
func MapPairs[K comparable, V, R any](m Map[K, V], fn func(K, V) R) Enum[R] {
	out := make([]R, len(m.keys))
	for i, k := range m.keys {
		out[i] = fn(k, m.entries[k])
	}
	return wrap(out)
}

// MapValues transforms every value, keeping keys and order.
func MapValues[K comparable, V, W any](m Map[K, V], fn func(V) W) Map[K, W] {
	out := Map[K, W]{
		keys:    make([]K, len(m.keys)),
		entries: make(map[K]W, len(m.keys)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.entries {
		out.entries[k] = fn(v)
	}
	return out
}

// Merge combines two Maps; on key collision the value from b wins while
// the key keeps its position in a.
func Merge[K comparable, V any](a, b Map[K, V]) Map[K, V] {
	out := a.clone()
	for _, k := range b.keys {
		out.put(k, b.entries[k])
	}
	return out
}

// MapEqual compares a Map with a plain Go map by key and value,
// ignoring order.
func MapEqual[K, V comparable](m Map[K, V], host map[K]V) bool {
	if len(m.keys) != len(host) {
		return false
	}
	for k, v := range host {
		got, ok := m.entries[k]
		if !ok || got != v {
			return false
		}
	}
	return true
}

// EqualMaps reports whether two Maps hold the same keys and values,
// ignoring order.
func EqualMaps[K, V comparable](a, b Map[K, V]) bool {
	return MapEqual(a, b.entries)
}
