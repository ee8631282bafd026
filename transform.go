package sortedmap

import "golang.org/x/exp/constraints"

// OrderedReduceFn folds the entries of a map in traversal order.
type OrderedReduceFn[K constraints.Ordered, V, R any] func(carry R, key K, value V, order int) R

// ForEachUntil visits entries ascending until the callback returns
// false.
func (m *Map[K, V, S]) ForEachUntil(f OrderedForEachUntilFn[K, V]) {
	order := 0
	m.ordered.Ascend(func(p Pair[K, S]) bool {
		goOn := f(p.Key, m.index[p.Key], order)
		order++
		return goOn
	})
}

// Filter returns a new map, under the same ordering policy, holding
// the entries the predicate preserved.
func (m *Map[K, V, S]) Filter(f OrderedFilterFn[K, V]) *Map[K, V, S] {
	result := New[K, V, S](m.cmp, m.sortKey)

	order := 0
	m.ordered.Ascend(func(p Pair[K, S]) bool {
		v := m.index[p.Key]
		if f(p.Key, v, order) {
			result.Set(p.Key, v)
		}
		order++
		return true
	})

	return result
}

// MapValues returns a new map with every value transformed. Keys and
// ordering policy are preserved; entries whose new value changes their
// sort value move rank accordingly.
func (m *Map[K, V, S]) MapValues(f OrderedMapFn[K, V]) *Map[K, V, S] {
	result := New[K, V, S](m.cmp, m.sortKey)

	order := 0
	m.ordered.Ascend(func(p Pair[K, S]) bool {
		result.Set(p.Key, f(p.Key, m.index[p.Key], order))
		order++
		return true
	})

	return result
}

// Reduce folds the map's entries in ascending order.
func Reduce[K constraints.Ordered, V, S, R any](
	m *Map[K, V, S],
	reducer OrderedReduceFn[K, V, R],
) R {
	var carry R
	order := 0
	m.ordered.Ascend(func(p Pair[K, S]) bool {
		carry = reducer(carry, p.Key, m.index[p.Key], order)
		order++
		return true
	})
	return carry
}
