package enum

// Pair is a (key, value) tuple. It is the element type of Map.Pairs and
// the input shape of ToMap and StarMap.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Unpack returns the pair's components.
func (p Pair[K, V]) Unpack() (K, V) {
	return p.Key, p.Value
}

// Swap returns a new pair with the components exchanged.
func (p Pair[K, V]) Swap() Pair[V, K] {
	return Pair[V, K]{Key: p.Value, Value: p.Key}
}

// Indexed couples an element with its position, see Enum.WithIndex.
type Indexed[T any] struct {
	Index int
	Value T
}
