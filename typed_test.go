package sortedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bdaya-Dev/sortedmap"
	"github.com/Bdaya-Dev/sortedmap/query"
)

func TestTypedMap_Ordering(t *testing.T) {
	t.Run("by value", func(t *testing.T) {
		m := sortedmap.ByValue[string, int]()
		m.Set("c", 1)
		m.Set("a", 3)
		m.Set("b", 2)

		assert.Equal(t, []string{"c", "b", "a"}, collectKeys(m.Keys()))
	})

	t.Run("by selector", func(t *testing.T) {
		m := sortedmap.BySelector[string, int, int](func(_ string, v int) int { return -v })
		m.Set("c", 1)
		m.Set("a", 3)
		m.Set("b", 2)

		assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Keys()))
	})

	t.Run("key order option carries the sort value as data only", func(t *testing.T) {
		m := sortedmap.ByValue[string, int](sortedmap.WithKeyOrder())
		m.Set("c", 1)
		m.Set("a", 3)
		m.Set("b", 2)

		assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Keys()))
	})

	t.Run("nil selector panics", func(t *testing.T) {
		assert.Panics(t, func() {
			sortedmap.BySelector[string, int, int](nil)
		})
	})
}

func TestTypedMap_SetSelector(t *testing.T) {
	t.Run("rebuild keeps the key set and reorders it", func(t *testing.T) {
		m := sortedmap.BySelector[string, int, int](func(_ string, v int) int { return v })
		m.Set("a", 3)
		m.Set("b", 2)
		m.Set("c", 1)

		require.Equal(t, []string{"c", "b", "a"}, collectKeys(m.Keys()))

		m.SetSelector(func(_ string, v int) int { return -v })

		assert.Equal(t, 3, m.Len())
		assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Keys()))
	})

	t.Run("mutations after rebuild follow the new policy", func(t *testing.T) {
		m := sortedmap.BySelector[string, int, int](func(_ string, v int) int { return v })
		m.Set("a", 1)
		m.Set("b", 2)

		m.SetSelector(func(_ string, v int) int { return -v })
		m.Set("c", 3)

		assert.Equal(t, []string{"c", "b", "a"}, collectKeys(m.Keys()))

		after, ok, err := m.FirstKeyAfter("c")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "b", after)
	})
}

func TestTypedMap_SubKeys(t *testing.T) {
	fixture := func() *sortedmap.TypedMap[int, int, int] {
		m := sortedmap.ByValue[int, int]()
		for i := 1; i <= 4; i++ {
			m.Set(i, i)
		}
		return m
	}

	pairPtr := func(k, s int) *sortedmap.Pair[int, int] {
		p := sortedmap.NewPair(k, s)
		return &p
	}

	t.Run("bounded with limit", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(pairPtr(2, 2), pairPtr(4, 4), query.Filter[sortedmap.Pair[int, int]]{Limit: 1})

		assert.Equal(t, []int{2}, keys)
	})

	t.Run("bounded without limit", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(pairPtr(2, 2), pairPtr(4, 4), query.Filter[sortedmap.Pair[int, int]]{})

		assert.Equal(t, []int{2, 3, 4}, keys)
	})

	t.Run("unbounded yields every key", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(nil, nil, query.Filter[sortedmap.Pair[int, int]]{})

		assert.Equal(t, []int{1, 2, 3, 4}, keys)
	})

	t.Run("reversed is the exact reverse over the same bounds", func(t *testing.T) {
		m := fixture()
		start, end := pairPtr(2, 2), pairPtr(4, 4)

		asc := m.SubKeys(start, end, query.Filter[sortedmap.Pair[int, int]]{})
		desc := m.SubKeys(start, end, query.Filter[sortedmap.Pair[int, int]]{Reverse: true})

		require.Equal(t, len(asc), len(desc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("reversed limit takes from the high end", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(pairPtr(1, 1), pairPtr(4, 4), query.Filter[sortedmap.Pair[int, int]]{
			Limit:   2,
			Reverse: true,
		})

		assert.Equal(t, []int{4, 3}, keys)
	})

	t.Run("validity predicate filters visited pairs", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(nil, nil, query.Filter[sortedmap.Pair[int, int]]{
			IsValid: func(p sortedmap.Pair[int, int]) bool { return p.Key%2 == 0 },
		})

		assert.Equal(t, []int{2, 4}, keys)
	})

	t.Run("empty range", func(t *testing.T) {
		m := fixture()

		keys := m.SubKeys(pairPtr(10, 10), pairPtr(20, 20), query.Filter[sortedmap.Pair[int, int]]{})

		assert.Empty(t, keys)
	})
}

func TestTypedMap_Clone(t *testing.T) {
	t.Run("clone keeps the selector policy", func(t *testing.T) {
		m := sortedmap.BySelector[string, int, int](func(_ string, v int) int { return -v })
		m.Set("a", 1)
		m.Set("b", 2)

		clone := m.Clone()
		clone.Set("c", 3)

		assert.Equal(t, []string{"c", "b", "a"}, collectKeys(clone.Keys()))
		assert.Equal(t, []string{"b", "a"}, collectKeys(m.Keys()))
	})
}
