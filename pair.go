package sortedmap

import "golang.org/x/exp/constraints"

type (
	// Pair is the unit stored in the ordered index: a key together with
	// the sort value the active ordering policy derived for it.
	// A Pair is never mutated after construction.
	Pair[K constraints.Ordered, S any] struct {
		Key       K
		SortValue S
	}

	// CompareFn ranks two pairs. Negative means a before b, zero means
	// the pairs occupy the same position under the active ordering.
	CompareFn[K constraints.Ordered, S any] func(a, b Pair[K, S]) int

	// Selector derives a sort value from a key and its current value.
	Selector[K constraints.Ordered, V, S any] func(key K, value V) S
)

// NewPair builds an anchor pair for range queries.
func NewPair[K constraints.Ordered, S any](key K, sortValue S) Pair[K, S] {
	return Pair[K, S]{Key: key, SortValue: sortValue}
}

// byKey ranks pairs by key natural ordering, ignoring the sort value.
func byKey[K constraints.Ordered, S any](a, b Pair[K, S]) int {
	return compareOrdered(a.Key, b.Key)
}
