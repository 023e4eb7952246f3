// Package enum provides two eager, value-semantic containers with
// functional combinators: Enum[T], an ordered duplicate-permitting
// sequence, and Map[K,V], a key-unique insertion-ordered mapping.
//
// Highlights:
// - From/Of/FromSeq/Range: construct an Enum
// - MapTo/Filter/Reduce/FlatMap: the core transform set
// - Take/Drop/Split/ChunkEvery: slicing, negative amounts count from the tail
// - Min/Max/Sum/Sort/GroupBy/Uniq: constrained package-level aggregates
// - NewMap/MapOf/ToMap: the Map container and its Enum interconversions
// - Fetch/FindIndex/FilterMap: absence and failure reported as values
//
// Every combinator materializes a new container; neither the receiver
// nor the input is ever mutated, and constructed containers own their
// buffers. Operations whose result type mentions only the container's
// own type parameters are methods; type-changing and constrained
// operations (MapTo, Reduce, Min, Uniq, GroupBy, ...) are package-level
// generic functions.
//
// Two error styles coexist: aggregate operations (Min, Max, MinMax,
// Random) panic on an empty container, while At, Fetch, Find and
// FilterMap report absence or failure as ordinary values via defaults,
// Option or Result.
package enum
