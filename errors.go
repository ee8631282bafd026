package sortedmap

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound - a neighbor query was anchored on a key the map
	// does not contain. Callers expecting absence must check Has first.
	ErrKeyNotFound = errors.New("key not found")

	// ErrLengthMismatch - parallel key and value sequences passed to a
	// bulk constructor had different lengths.
	ErrLengthMismatch = errors.New("keys and values length mismatch")

	// ErrReadOnly - a mutation was attempted through an unmodifiable view.
	ErrReadOnly = errors.New("sorted map is read only")
)
