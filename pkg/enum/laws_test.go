package enum

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/enumerio/pkg/option"
)

func lawProperties() (*gopter.Properties, gopter.Gen) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters), gen.SliceOf(gen.IntRange(-50, 50))
}

func TestMapFusionLaw(t *testing.T) {
	properties, ints := lawProperties()

	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }

	properties.Property("MapTo(f) then MapTo(g) equals MapTo(g of f)", prop.ForAll(
		func(xs []int) bool {
			e := From(xs)
			left := MapTo(MapTo(e, f), g)
			right := MapTo(e, func(x int) int { return g(f(x)) })
			return Equal(left, right)
		},
		ints,
	))

	properties.TestingRun(t)
}

func TestFilterCompositionLaw(t *testing.T) {
	properties, ints := lawProperties()

	p := func(x int) bool { return x%2 == 0 }
	q := func(x int) bool { return x > 0 }

	properties.Property("Filter(p) then Filter(q) equals Filter(p and q)", prop.ForAll(
		func(xs []int) bool {
			e := From(xs)
			left := e.Filter(p).Filter(q)
			right := e.Filter(func(x int) bool { return p(x) && q(x) })
			return Equal(left, right)
		},
		ints,
	))

	properties.TestingRun(t)
}

func TestTakeDropReconstructionLaw(t *testing.T) {
	properties, ints := lawProperties()

	properties.Property("Take(n) ++ Drop(n) reconstructs the enum", prop.ForAll(
		func(xs []int, n int) bool {
			e := From(xs)
			n %= e.Len() + 1
			if n < 0 {
				n = -n
			}
			recombined := append(e.Take(n).Values(), e.Drop(n).Values()...)
			return EqualSlice(e, recombined)
		},
		ints,
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestUniqLaws(t *testing.T) {
	properties, ints := lawProperties()

	properties.Property("Uniq output has no duplicates", prop.ForAll(
		func(xs []int) bool {
			seen := map[int]int{}
			for _, v := range Uniq(From(xs)).Values() {
				seen[v]++
				if seen[v] > 1 {
					return false
				}
			}
			return true
		},
		ints,
	))

	properties.Property("Uniq keeps elements at their first occurrence", prop.ForAll(
		func(xs []int) bool {
			e := From(xs)
			unique := Uniq(e)
			prev := -1
			for _, v := range unique.Values() {
				at := IndexOf(e, v)
				if at <= prev {
					return false
				}
				prev = at
			}
			return true
		},
		ints,
	))

	properties.TestingRun(t)
}

func TestSortLaws(t *testing.T) {
	properties, ints := lawProperties()

	properties.Property("Sort output is a non-decreasing permutation", prop.ForAll(
		func(xs []int) bool {
			sorted := Sort(From(xs)).Values()
			if len(sorted) != len(xs) {
				return false
			}
			counts := map[int]int{}
			for _, v := range xs {
				counts[v]++
			}
			for i, v := range sorted {
				counts[v]--
				if i > 0 && sorted[i-1] > v {
					return false
				}
			}
			for _, c := range counts {
				if c != 0 {
					return false
				}
			}
			return true
		},
		ints,
	))

	properties.TestingRun(t)
}

func TestChunkedLaws(t *testing.T) {
	properties, ints := lawProperties()

	properties.Property("concatenated chunks reconstruct the enum", prop.ForAll(
		func(xs []int, count int) bool {
			e := From(xs)
			chunks := Chunked(e, count)
			if !Equal(e, Concat(chunks)) {
				return false
			}
			for i, chunk := range chunks.Values() {
				if i < chunks.Len()-1 && chunk.Len() != count {
					return false
				}
			}
			return true
		},
		ints,
		gen.IntRange(1, 7),
	))

	properties.TestingRun(t)
}

func TestToMapRoundTripLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ToMap(Pairs(ToMap(e))) equals ToMap(e)", prop.ForAll(
		func(keys []int) bool {
			pairs := MapTo(Uniq(From(keys)), func(k int) Pair[int, string] {
				return NewPair(k, "v")
			})
			first := ToMap(pairs)
			second := ToMap(first.Pairs())
			return EqualMaps(first, second) &&
				Equal(first.Keys(), second.Keys())
		},
		gen.SliceOf(gen.IntRange(-20, 20)),
	))

	properties.TestingRun(t)
}

func TestMaybeAdapterLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	fragile := option.Maybe(func(x int) (int, error) {
		if x < 0 {
			panic("negative")
		}
		if x == 0 {
			return 0, errors.New("zero")
		}
		return x * 2, nil
	})

	properties.Property("panicking and failing inputs yield None, others Some(f(x))", prop.ForAll(
		func(x int) bool {
			got := fragile(x)
			if x <= 0 {
				return got.IsNothing()
			}
			return option.Equal(got, option.Some(x*2))
		},
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t)
}
