package query

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
)

// Range is an immutable inclusive-bounds predicate over [start, end].
// A nil bound leaves that side unbounded.
type Range[T any] struct {
	start *T
	end   *T
	cmp   CompareFunc[T]
}

func NewRange[T any](start, end *T, cmp CompareFunc[T]) Range[T] {
	return Range[T]{start: start, end: end, cmp: cmp}
}

func (r Range[T]) Start() (T, bool) {
	if r.start == nil {
		var zero T
		return zero, false
	}
	return *r.start, true
}

func (r Range[T]) End() (T, bool) {
	if r.end == nil {
		var zero T
		return zero, false
	}
	return *r.end, true
}

// Test reports whether v lies within the bounds, both ends inclusive.
func (r Range[T]) Test(v T) bool {
	if r.start != nil && r.cmp(*r.start, v) > 0 {
		return false
	}
	if r.end != nil && r.cmp(v, *r.end) > 0 {
		return false
	}
	return true
}

// Equal compares bounds structurally and the comparator by identity.
func (r Range[T]) Equal(other Range[T]) bool {
	return reflect.DeepEqual(r.start, other.start) &&
		reflect.DeepEqual(r.end, other.end) &&
		fnPtr(r.cmp) == fnPtr(other.cmp)
}

// Hash is consistent with Equal.
func (r Range[T]) Hash() uint64 {
	h := fnv.New64a()
	if r.start != nil {
		fmt.Fprintf(h, "%v", *r.start)
	}
	h.Write([]byte{0})
	if r.end != nil {
		fmt.Fprintf(h, "%v", *r.end)
	}
	writeUint64(h, uint64(fnPtr(r.cmp)))
	return h.Sum64()
}

func writeUint64(w io.Writer, u uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	w.Write(buf[:])
}
