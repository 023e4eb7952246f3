package enum

import "math/rand/v2"

// Take returns the first amount elements. A negative amount keeps the
// same magnitude of elements from the tail instead.
func (e Enum[T]) Take(amount int) Enum[T] {
	switch {
	case amount == 0:
		return Of[T]()
	case amount > 0:
		if amount > len(e.data) {
			amount = len(e.data)
		}
		return From(e.data[:amount])
	default:
		start := len(e.data) + amount
		if start < 0 {
			start = 0
		}
		return From(e.data[start:])
	}
}

// Drop removes the first amount elements. A negative amount removes the
// same magnitude of elements from the tail instead.
func (e Enum[T]) Drop(amount int) Enum[T] {
	switch {
	case amount == 0:
		return From(e.data)
	case amount > 0:
		if amount > len(e.data) {
			amount = len(e.data)
		}
		return From(e.data[amount:])
	default:
		end := len(e.data) + amount
		if end < 0 {
			end = 0
		}
		return From(e.data[:end])
	}
}

// TakeWhile returns the leading elements satisfying pred.
func (e Enum[T]) TakeWhile(pred func(T) bool) Enum[T] {
	for i, v := range e.data {
		if !pred(v) {
			return From(e.data[:i])
		}
	}
	return From(e.data)
}

// DropWhile removes the leading elements satisfying pred.
func (e Enum[T]) DropWhile(pred func(T) bool) Enum[T] {
	for i, v := range e.data {
		if !pred(v) {
			return From(e.data[i:])
		}
	}
	return Of[T]()
}

// TakeEvery returns every nth element starting from the head; a negative
// nth strides from the tail backwards; nth of zero yields an empty Enum.
func (e Enum[T]) TakeEvery(nth int) Enum[T] {
	if nth == 0 {
		return Of[T]()
	}
	out := make([]T, 0)
	if nth > 0 {
		for i := 0; i < len(e.data); i += nth {
			out = append(out, e.data[i])
		}
	} else {
		for i := len(e.data) - 1; i >= 0; i += nth {
			out = append(out, e.data[i])
		}
	}
	return wrap(out)
}

// Split returns the first count elements and the rest. The count is
// clamped to the valid range; a negative count is taken from the tail,
// so Split(-1) separates the last element.
func (e Enum[T]) Split(count int) (Enum[T], Enum[T]) {
	i := count
	if i < 0 {
		i += len(e.data)
	}
	if i < 0 {
		i = 0
	}
	if i > len(e.data) {
		i = len(e.data)
	}
	return From(e.data[:i]), From(e.data[i:])
}

// SplitWhile splits at the first element failing pred: the prefix of
// elements satisfying pred, and the remainder starting exactly at the
// first failing element.
func (e Enum[T]) SplitWhile(pred func(T) bool) (Enum[T], Enum[T]) {
	for i, v := range e.data {
		if !pred(v) {
			return From(e.data[:i]), From(e.data[i:])
		}
	}
	return From(e.data), Of[T]()
}

// SplitWith partitions into (elements satisfying pred, elements failing
// pred), preserving relative order in both halves.
func (e Enum[T]) SplitWith(pred func(T) bool) (Enum[T], Enum[T]) {
	matching := make([]T, 0)
	rest := make([]T, 0)
	for _, v := range e.data {
		if pred(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	}
	return wrap(matching), wrap(rest)
}

// Chunked splits the Enum into consecutive chunks of length count, the
// final chunk possibly shorter.
func Chunked[T any](e Enum[T], count int) Enum[Enum[T]] {
	return ChunkEvery(e, count, count, false)
}

// ChunkEvery produces chunks of length count sliding by step. A window
// never starts past the point where the previous one reached the end.
// The final partial chunk is kept unless discard is set. Panics when
// count or step is not positive.
func ChunkEvery[T any](e Enum[T], count, step int, discard bool) Enum[Enum[T]] {
	if count <= 0 || step <= 0 {
		panic("enum: ChunkEvery: count and step must be positive")
	}
	chunks := make([]Enum[T], 0)
	for i := 0; i < len(e.data); i += step {
		end := i + count
		if end > len(e.data) {
			end = len(e.data)
		}
		if discard && end-i < count {
			break
		}
		chunks = append(chunks, From(e.data[i:end]))
		if i+count >= len(e.data) {
			break
		}
	}
	return wrap(chunks)
}

// Reversed returns the elements in reverse order.
func (e Enum[T]) Reversed() Enum[T] {
	out := make([]T, len(e.data))
	for i, v := range e.data {
		out[len(e.data)-1-i] = v
	}
	return wrap(out)
}

// Shuffle returns a new Enum with the elements in random order; the
// receiver is left untouched.
func (e Enum[T]) Shuffle() Enum[T] {
	out := e.Values()
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return wrap(out)
}

// Random returns a randomly selected element. Panics on an empty Enum.
func (e Enum[T]) Random() T {
	if e.Empty() {
		panic("enum: Random: enum is empty")
	}
	return e.data[rand.IntN(len(e.data))]
}

// TakeRandom returns n randomly selected elements without replacement.
func (e Enum[T]) TakeRandom(n int) Enum[T] {
	return e.Shuffle().Take(n)
}

// WithIndex pairs each element with its position, counting from start.
func WithIndex[T any](e Enum[T], start int) Enum[Indexed[T]] {
	out := make([]Indexed[T], len(e.data))
	for i, v := range e.data {
		out[i] = Indexed[T]{Index: start + i, Value: v}
	}
	return wrap(out)
}
