package enum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Uniq(Of(1, 1, 2, 2, 3)).Values())
	assert.Equal(t, []int{3, 1, 2}, Uniq(Of(3, 1, 3, 2, 1)).Values())
	assert.Empty(t, Uniq(Of[int]()).Values())
}

func TestUniqBy_KeepsFirstPerKey(t *testing.T) {
	e := Of("apple", "avocado", "banana", "cherry")
	byInitial := UniqBy(e, func(s string) byte { return s[0] })
	assert.Equal(t, []string{"apple", "banana", "cherry"}, byInitial.Values())
}

func TestFreq(t *testing.T) {
	counts := Freq(Of("a", "b", "a", "c", "a"))
	assert.True(t, MapEqual(counts, map[string]int{"a": 3, "b": 1, "c": 1}))
	// keys appear in first-encounter order
	assert.Equal(t, []string{"a", "b", "c"}, counts.Keys().Values())
}

func TestFreqBy(t *testing.T) {
	counts := FreqBy(Of("ant", "bee", "cow", "ax"), func(s string) int { return len(s) })
	assert.True(t, MapEqual(counts, map[int]int{3: 3, 2: 1}))
}

func TestGroupBy_Parity(t *testing.T) {
	groups := GroupBy(Of(1, 2, 3, 4), func(x int) int { return x % 2 })
	require.Equal(t, 2, groups.Len())

	odd := groups.Get(1)
	require.True(t, odd.IsSome())
	assert.Equal(t, []int{1, 3}, odd.Unwrap().Values())

	even := groups.Get(0)
	require.True(t, even.IsSome())
	assert.Equal(t, []int{2, 4}, even.Unwrap().Values())

	// group keys follow encounter order
	assert.Equal(t, []int{1, 0}, groups.Keys().Values())
}

func TestGroupByMap_TransformsValues(t *testing.T) {
	groups := GroupByMap(Of("ant", "bee", "ax"),
		func(s string) byte { return s[0] },
		strings.ToUpper)
	a := groups.Get('a')
	require.True(t, a.IsSome())
	assert.Equal(t, []string{"ANT", "AX"}, a.Unwrap().Values())
}

func TestPluckKey(t *testing.T) {
	rows := Of(
		map[string]int{"id": 1, "age": 30},
		map[string]int{"id": 2, "age": 25},
	)
	assert.Equal(t, []int{1, 2}, PluckKey(rows, "id").Values())
	assert.Panics(t, func() { PluckKey(rows, "missing") })
}

func TestPluckKeys(t *testing.T) {
	rows := Of(
		map[string]int{"id": 1, "age": 30},
		map[string]int{"id": 2, "age": 25},
	)
	got := PluckKeys(rows, "id", "age")
	assert.Equal(t, [][]int{{1, 30}, {2, 25}}, got.Values())
}

func TestPluckAt(t *testing.T) {
	rows := Of([]string{"a", "b"}, []string{"c", "d"})
	assert.Equal(t, []string{"b", "d"}, PluckAt(rows, 1).Values())
	assert.Equal(t, []string{"b", "d"}, PluckAt(rows, -1).Values())
	assert.Panics(t, func() { PluckAt(rows, 5) })
}

func TestPluckAts(t *testing.T) {
	rows := Of([]int{1, 2, 3}, []int{4, 5, 6})
	assert.Equal(t, [][]int{{3, 1}, {6, 4}}, PluckAts(rows, 2, 0).Values())
}
