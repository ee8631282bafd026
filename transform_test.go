package sortedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bdaya-Dev/sortedmap"
)

func TestMap_ForEachUntil(t *testing.T) {
	t.Run("stops after the callback returns false", func(t *testing.T) {
		m := sortedmap.ByKey[int, string]()
		for _, k := range []int{4, 2, 1, 3} {
			m.Set(k, "v")
		}

		var visited []int
		m.ForEachUntil(func(k int, _ string, order int) bool {
			visited = append(visited, k)
			return order < 1
		})

		assert.Equal(t, []int{1, 2}, visited)
	})
}

func TestMap_Filter(t *testing.T) {
	t.Run("keeps preserved entries under the same policy", func(t *testing.T) {
		m := sortedmap.ByValue[string, int]()
		m.Set("a", 3)
		m.Set("b", 1)
		m.Set("c", 2)

		even := m.Filter(func(_ string, v int, _ int) bool {
			return v%2 == 0
		})

		assert.Equal(t, []string{"c"}, collectKeys(even.Keys()))
		assert.Equal(t, 3, m.Len())
	})
}

func TestMap_MapValues(t *testing.T) {
	t.Run("transformed values re-rank under value ordering", func(t *testing.T) {
		m := sortedmap.ByValue[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)

		negated := m.MapValues(func(_ string, v int, _ int) int {
			return -v
		})

		assert.Equal(t, []string{"c", "b", "a"}, collectKeys(negated.Keys()))
		assert.Equal(t, -2, negated.Get("b"))
		assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Keys()))
	})
}

func TestReduce(t *testing.T) {
	t.Run("folds entries in traversal order", func(t *testing.T) {
		m := sortedmap.ByKey[string, int]()
		m.Set("b", 2)
		m.Set("a", 1)
		m.Set("c", 3)

		concat := sortedmap.Reduce(m.Map, func(carry string, k string, _ int, _ int) string {
			return carry + k
		})
		assert.Equal(t, "abc", concat)

		sum := sortedmap.Reduce(m.Map, func(carry int, _ string, v int, _ int) int {
			return carry + v
		})
		assert.Equal(t, 6, sum)
	})
}
