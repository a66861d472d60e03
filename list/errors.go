package list

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexError via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError is returned by the positional operations (Get, Set, Insert,
// RemoveAt) when index falls outside the valid bound.
type IndexError struct {
	Op    string // operation that failed
	Index int    // index the caller asked for
	Len   int    // list length at the time of the call

	// Inclusive is set when Len itself was a valid index (Insert).
	Inclusive bool
}

func (e *IndexError) Error() string {
	closing := ")"
	if e.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("list: %s: index %d out of range [0:%d%s", e.Op, e.Index, e.Len, closing)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
