package sortedmap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/Bdaya-Dev/sortedmap/query"
)

// Unmodifiable is a read-only view over a typed map. Reads delegate to
// the wrapped map and observe its current state. Set, Remove, Clear
// and SetSelector panic with ErrReadOnly.
type Unmodifiable[K constraints.Ordered, V any, S constraints.Ordered] struct {
	tm *TypedMap[K, V, S]
}

// Unmodifiable wraps tm in a read-only view. The underlying map stays
// mutable through its own handle.
func (tm *TypedMap[K, V, S]) Unmodifiable() *Unmodifiable[K, V, S] {
	return &Unmodifiable[K, V, S]{tm: tm}
}

func (u *Unmodifiable[K, V, S]) Get(key K) V              { return u.tm.Get(key) }
func (u *Unmodifiable[K, V, S]) HasGet(key K) (V, bool)   { return u.tm.HasGet(key) }
func (u *Unmodifiable[K, V, S]) Has(key K) bool           { return u.tm.Has(key) }
func (u *Unmodifiable[K, V, S]) Len() int                 { return u.tm.Len() }
func (u *Unmodifiable[K, V, S]) IsEmpty() bool            { return u.tm.IsEmpty() }
func (u *Unmodifiable[K, V, S]) Keys() iter.Seq[K]        { return u.tm.Keys() }
func (u *Unmodifiable[K, V, S]) Values() iter.Seq[V]      { return u.tm.Values() }
func (u *Unmodifiable[K, V, S]) FirstKey() (K, bool)      { return u.tm.FirstKey() }
func (u *Unmodifiable[K, V, S]) LastKey() (K, bool)       { return u.tm.LastKey() }
func (u *Unmodifiable[K, V, S]) Selector() Selector[K, V, S] {
	return u.tm.Selector()
}

func (u *Unmodifiable[K, V, S]) ForEach(f OrderedForEachFn[K, V]) {
	u.tm.ForEach(f)
}

func (u *Unmodifiable[K, V, S]) LastKeyBefore(key K) (K, bool, error) {
	return u.tm.LastKeyBefore(key)
}

func (u *Unmodifiable[K, V, S]) FirstKeyAfter(key K) (K, bool, error) {
	return u.tm.FirstKeyAfter(key)
}

func (u *Unmodifiable[K, V, S]) SubKeys(start, end *Pair[K, S], f query.Filter[Pair[K, S]]) []K {
	return u.tm.SubKeys(start, end, f)
}

// Clone returns a mutable independent copy of the wrapped map.
func (u *Unmodifiable[K, V, S]) Clone() *TypedMap[K, V, S] {
	return u.tm.Clone()
}

func (u *Unmodifiable[K, V, S]) Set(K, V) {
	panic(ErrReadOnly)
}

func (u *Unmodifiable[K, V, S]) Remove(K) V {
	panic(ErrReadOnly)
}

func (u *Unmodifiable[K, V, S]) Clear() {
	panic(ErrReadOnly)
}

func (u *Unmodifiable[K, V, S]) SetSelector(Selector[K, V, S]) {
	panic(ErrReadOnly)
}
