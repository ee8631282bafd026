// Package sortedmap provides a key/value container indexed twice: a
// hash index for O(1) lookup and a B-tree of key/sort-value pairs for
// ordered traversal, neighbor queries and bounded range queries.
package sortedmap

import (
	"iter"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const btreeDegree = 32

type (
	OrderedForEachFn[K constraints.Ordered, V any]      func(key K, value V, order int)
	OrderedForEachUntilFn[K constraints.Ordered, V any] func(key K, value V, order int) bool
	OrderedFilterFn[K constraints.Ordered, V any]       func(key K, value V, order int) bool
	OrderedMapFn[K constraints.Ordered, V any]          func(key K, value V, order int) V

	// Map keeps every entry in two synchronized indexes. Each public
	// operation leaves both indexes consistent: one pair per present
	// key, no pair without a key, sort values current.
	//
	// A Map is not safe for concurrent mutation, and mutating it while
	// an ordered traversal is open is unsupported.
	Map[K constraints.Ordered, V any, S any] struct {
		cmp     CompareFn[K, S]
		sortKey Selector[K, V, S]
		index   map[K]V
		ordered *btree.BTreeG[Pair[K, S]]
	}
)

// New creates an empty map ranked by cmp. A nil cmp falls back to key
// natural ordering. sortKey derives the sort value each stored pair
// carries; nil means pairs carry the zero sort value.
func New[K constraints.Ordered, V any, S any](cmp CompareFn[K, S], sortKey Selector[K, V, S]) *Map[K, V, S] {
	if cmp == nil {
		cmp = byKey[K, S]
	}
	if sortKey == nil {
		sortKey = func(K, V) S { return getZero[S]() }
	}

	return &Map[K, V, S]{
		cmp:     cmp,
		sortKey: sortKey,
		index:   make(map[K]V),
		ordered: btree.NewG(btreeDegree, pairLess(cmp)),
	}
}

// pairLess adapts the active ordering for the B-tree. The key breaks
// ties so that distinct keys never collapse into a single tree slot
// even when the ordering ranks their pairs equal.
func pairLess[K constraints.Ordered, S any](cmp CompareFn[K, S]) btree.LessFunc[Pair[K, S]] {
	return func(a, b Pair[K, S]) bool {
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		return a.Key < b.Key
	}
}

func (m *Map[K, V, S]) pair(key K, value V) Pair[K, S] {
	return Pair[K, S]{Key: key, SortValue: m.sortKey(key, value)}
}

// Set is idempotent. Overwriting removes the key's old pair from the
// ordered index before the new pair goes in, so a value change that
// moves the entry's rank never leaves a stale pair behind.
func (m *Map[K, V, S]) Set(key K, value V) {
	if old, found := m.index[key]; found {
		m.ordered.Delete(m.pair(key, old))
	}
	m.index[key] = value
	m.ordered.ReplaceOrInsert(m.pair(key, value))
}

func (m *Map[K, V, S]) HasGet(key K) (V, bool) {
	v, found := m.index[key]
	if !found {
		return getZero[V](), false
	}
	return v, true
}

func (m *Map[K, V, S]) Get(key K) V {
	return m.index[key]
}

func (m *Map[K, V, S]) Has(key K) bool {
	_, found := m.index[key]
	return found
}

func (m *Map[K, V, S]) HasRemove(key K) (V, bool) {
	v, found := m.index[key]
	if !found {
		return getZero[V](), false
	}

	delete(m.index, key)
	m.ordered.Delete(m.pair(key, v))

	return v, true
}

func (m *Map[K, V, S]) Remove(key K) V {
	v, _ := m.HasRemove(key)
	return v
}

func (m *Map[K, V, S]) Len() int {
	return len(m.index)
}

func (m *Map[K, V, S]) IsEmpty() bool {
	return len(m.index) == 0
}

func (m *Map[K, V, S]) Clear() {
	m.index = make(map[K]V)
	m.ordered.Clear(false)
}

// Keys yields keys ascending under the active ordering. The sequence
// is lazy and restartable: each range re-traverses the current state.
func (m *Map[K, V, S]) Keys() iter.Seq[K] {
	return m.KeysIn(AscOrder)
}

// KeysIn yields keys in the given traversal direction.
func (m *Map[K, V, S]) KeysIn(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		visit := func(p Pair[K, S]) bool {
			return yield(p.Key)
		}
		if order == AscOrder {
			m.ordered.Ascend(visit)
		} else {
			m.ordered.Descend(visit)
		}
	}
}

// Values yields values in ascending key-pair order.
func (m *Map[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.ordered.Ascend(func(p Pair[K, S]) bool {
			return yield(m.index[p.Key])
		})
	}
}

func (m *Map[K, V, S]) ForEach(f OrderedForEachFn[K, V]) {
	order := 0
	m.ordered.Ascend(func(p Pair[K, S]) bool {
		f(p.Key, m.index[p.Key], order)
		order++
		return true
	})
}

// FirstKey returns the minimum-ranked key.
func (m *Map[K, V, S]) FirstKey() (K, bool) {
	p, found := m.ordered.Min()
	if !found {
		return getZero[K](), false
	}
	return p.Key, true
}

// LastKey returns the maximum-ranked key.
func (m *Map[K, V, S]) LastKey() (K, bool) {
	p, found := m.ordered.Max()
	if !found {
		return getZero[K](), false
	}
	return p.Key, true
}

// AddAll copies every entry of src into m, overwriting shared keys.
func (m *Map[K, V, S]) AddAll(src *Map[K, V, S]) {
	src.ordered.Ascend(func(p Pair[K, S]) bool {
		m.Set(p.Key, src.index[p.Key])
		return true
	})
}

// Clone returns an independent copy under the same ordering policy.
// Both indexes are rebuilt; the copy shares no mutable state with m.
func (m *Map[K, V, S]) Clone() *Map[K, V, S] {
	clone := &Map[K, V, S]{
		cmp:     m.cmp,
		sortKey: m.sortKey,
		index:   make(map[K]V, len(m.index)),
		ordered: btree.NewG(btreeDegree, pairLess(m.cmp)),
	}

	m.ordered.Ascend(func(p Pair[K, S]) bool {
		clone.index[p.Key] = m.index[p.Key]
		clone.ordered.ReplaceOrInsert(p)
		return true
	})

	return clone
}
