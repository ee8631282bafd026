package sortedmap

import "github.com/pkg/errors"

// LastKeyBefore returns the key of the nearest pair ranked strictly
// before key's pair. The anchor key must be present, since its exact
// position seeds the backward walk; an absent anchor is a programmer
// error and yields ErrKeyNotFound. Pairs ranked equal to the anchor
// are stepped over, so duplicates under the active ordering never mask
// the true predecessor. The false result means no smaller pair exists.
func (m *Map[K, V, S]) LastKeyBefore(key K) (K, bool, error) {
	value, found := m.index[key]
	if !found {
		return getZero[K](), false, errors.Wrapf(ErrKeyNotFound, "lastKeyBefore %v", key)
	}

	anchor := m.pair(key, value)
	var (
		neighbor K
		ok       bool
	)
	m.ordered.DescendLessOrEqual(anchor, func(p Pair[K, S]) bool {
		if m.cmp(p, anchor) == 0 {
			return true
		}
		neighbor = p.Key
		ok = true
		return false
	})

	return neighbor, ok, nil
}

// FirstKeyAfter is the forward counterpart of LastKeyBefore.
func (m *Map[K, V, S]) FirstKeyAfter(key K) (K, bool, error) {
	value, found := m.index[key]
	if !found {
		return getZero[K](), false, errors.Wrapf(ErrKeyNotFound, "firstKeyAfter %v", key)
	}

	anchor := m.pair(key, value)
	var (
		neighbor K
		ok       bool
	)
	m.ordered.AscendGreaterOrEqual(anchor, func(p Pair[K, S]) bool {
		if m.cmp(p, anchor) == 0 {
			return true
		}
		neighbor = p.Key
		ok = true
		return false
	})

	return neighbor, ok, nil
}
