// Package query holds the value objects a bounded range query is
// specified with. They carry configuration only; execution lives in
// the sortedmap package.
package query

import (
	"hash/fnv"
	"reflect"
)

type (
	// CompareFunc ranks two values; negative means a before b.
	CompareFunc[T any] func(a, b T) int

	// Predicate reports whether a value belongs in a result set.
	Predicate[T any] func(v T) bool

	// Filter is an immutable query specification: an optional ordering
	// override, an optional membership predicate, a result cap (0 means
	// uncapped) and a direction flag.
	Filter[T any] struct {
		Compare CompareFunc[T]
		IsValid Predicate[T]
		Limit   int
		Reverse bool
	}
)

// Equal compares structurally; function fields compare by identity.
func (f Filter[T]) Equal(other Filter[T]) bool {
	return fnPtr(f.Compare) == fnPtr(other.Compare) &&
		fnPtr(f.IsValid) == fnPtr(other.IsValid) &&
		f.Limit == other.Limit &&
		f.Reverse == other.Reverse
}

// Hash is consistent with Equal.
func (f Filter[T]) Hash() uint64 {
	h := fnv.New64a()
	writeUint64(h, uint64(fnPtr(f.Compare)))
	writeUint64(h, uint64(fnPtr(f.IsValid)))
	writeUint64(h, uint64(f.Limit))
	if f.Reverse {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func fnPtr(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}
	return v.Pointer()
}
