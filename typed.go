package sortedmap

import (
	"golang.org/x/exp/constraints"

	"github.com/Bdaya-Dev/sortedmap/query"
)

type (
	typedConfig struct {
		keyOrder bool
	}

	TypedOption func(*typedConfig)

	// TypedMap ranks entries by a selector whose output has a natural
	// ordering. The selector is mutable: SetSelector rebuilds the
	// ordered index under the new policy.
	TypedMap[K constraints.Ordered, V any, S constraints.Ordered] struct {
		*Map[K, V, S]
		sel      Selector[K, V, S]
		keyOrder bool
	}
)

// WithKeyOrder ranks pairs by key alone. The selector output is still
// carried in every pair and consulted for pair equality, but not for
// traversal order.
func WithKeyOrder() TypedOption {
	return func(cfg *typedConfig) {
		cfg.keyOrder = true
	}
}

// BySelector creates an empty typed map ranked by the selector's
// output, keys breaking ties. A nil selector panics.
func BySelector[K constraints.Ordered, V any, S constraints.Ordered](
	sel Selector[K, V, S],
	options ...TypedOption,
) *TypedMap[K, V, S] {
	if sel == nil {
		panic("sortedmap: selector is required")
	}

	var cfg typedConfig
	for _, o := range options {
		o(&cfg)
	}

	cmp := bySortValue[K, S]
	if cfg.keyOrder {
		cmp = byKey[K, S]
	}

	return &TypedMap[K, V, S]{
		Map:      New[K, V, S](cmp, sel),
		sel:      sel,
		keyOrder: cfg.keyOrder,
	}
}

// ByKey creates a typed map ordered by key natural ordering.
func ByKey[K constraints.Ordered, V any](options ...TypedOption) *TypedMap[K, V, K] {
	return BySelector[K, V, K](func(k K, _ V) K { return k }, options...)
}

// ByValue creates a typed map ordered by value natural ordering.
func ByValue[K, V constraints.Ordered](options ...TypedOption) *TypedMap[K, V, V] {
	return BySelector[K, V, V](func(_ K, v V) V { return v }, options...)
}

func bySortValue[K constraints.Ordered, S constraints.Ordered](a, b Pair[K, S]) int {
	return compareOrdered(a.SortValue, b.SortValue)
}

// Selector returns the active selector.
func (tm *TypedMap[K, V, S]) Selector() Selector[K, V, S] {
	return tm.sel
}

// SetSelector swaps the ordering policy and rebuilds the ordered index
// in full: snapshot, clear, reinsert every entry under the new
// selector. O(n log n). The swap is observable only as a whole.
func (tm *TypedMap[K, V, S]) SetSelector(sel Selector[K, V, S]) {
	if sel == nil {
		panic("sortedmap: selector is required")
	}

	rebuilt := New[K, V, S](tm.cmp, sel)
	for k, v := range tm.index {
		rebuilt.Set(k, v)
	}

	tm.sel = sel
	tm.Map = rebuilt
}

// SubKeys collects the keys whose pairs lie within [start, end] under
// the active ordering, ascending, or descending when f.Reverse is set.
// A nil bound is unbounded on that side. f.Limit caps the result,
// f.IsValid filters visited pairs, and f.Compare overrides the
// ordering used for the bounds checks.
//
// The walk starts at the end bound when reversed, at the start bound
// otherwise, and stops at the first pair ranked past the opposite
// bound.
func (tm *TypedMap[K, V, S]) SubKeys(start, end *Pair[K, S], f query.Filter[Pair[K, S]]) []K {
	cmp := tm.cmp
	if f.Compare != nil {
		cmp = CompareFn[K, S](f.Compare)
	}
	bounds := query.NewRange(start, end, query.CompareFunc[Pair[K, S]](cmp))

	var keys []K
	visit := func(p Pair[K, S]) bool {
		if f.Reverse {
			if start != nil && cmp(p, *start) < 0 {
				return false
			}
		} else if end != nil && cmp(p, *end) > 0 {
			return false
		}
		if f.IsValid != nil && !f.IsValid(p) {
			return true
		}
		if !bounds.Test(p) {
			return true
		}
		keys = append(keys, p.Key)
		return f.Limit == 0 || len(keys) < f.Limit
	}

	if f.Reverse {
		if end != nil {
			tm.ordered.DescendLessOrEqual(*end, visit)
		} else {
			tm.ordered.Descend(visit)
		}
	} else {
		if start != nil {
			tm.ordered.AscendGreaterOrEqual(*start, visit)
		} else {
			tm.ordered.Ascend(visit)
		}
	}

	return keys
}

// Clone returns an independent typed copy under the same policy.
func (tm *TypedMap[K, V, S]) Clone() *TypedMap[K, V, S] {
	return &TypedMap[K, V, S]{
		Map:      tm.Map.Clone(),
		sel:      tm.sel,
		keyOrder: tm.keyOrder,
	}
}
