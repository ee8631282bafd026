package sortedmap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type (
	// KeyFn extracts the map key from a source item.
	KeyFn[T any, K constraints.Ordered] func(item T) K

	// ValueFn extracts the map value from a source item.
	ValueFn[T, V any] func(item T) V
)

// FromMap copies src into a new key-ordered typed map.
func FromMap[K constraints.Ordered, V any](src map[K]V) *TypedMap[K, V, K] {
	tm := ByKey[K, V]()
	for k, v := range src {
		tm.Set(k, v)
	}
	return tm
}

// FromKeysAndValues zips parallel key and value sequences into a new
// key-ordered typed map. Sequences of unequal length are rejected
// whole; no partial map is returned.
func FromKeysAndValues[K constraints.Ordered, V any](keys []K, values []V) (*TypedMap[K, V, K], error) {
	if len(keys) != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d keys, %d values", len(keys), len(values))
	}

	tm := ByKey[K, V]()
	for i := range keys {
		tm.Set(keys[i], values[i])
	}
	return tm, nil
}

// FromSlice builds a key-ordered typed map from items, deriving each
// entry with the key and value extractors. A later item overwrites an
// earlier one with the same key.
func FromSlice[T any, K constraints.Ordered, V any](
	items []T,
	key KeyFn[T, K],
	value ValueFn[T, V],
) *TypedMap[K, V, K] {
	tm := ByKey[K, V]()
	for i := range items {
		tm.Set(key(items[i]), value(items[i]))
	}
	return tm
}
