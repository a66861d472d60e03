package main

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/concurrency/generic-list/list"
)

func demoRemoving(r *runner) error {
	numbers := list.New(10, 20, 30, 40, 10)
	r.out.Printf("  start:             %s\n", formatList(r.out, numbers))

	numbers.Remove(10) // first 10 only; the trailing 10 stays
	r.out.Printf("  Remove(10):        %s\n", formatList(r.out, numbers))

	if err := numbers.RemoveAt(2); err != nil { // third element
		return err
	}
	r.out.Printf("  RemoveAt(2):       %s\n", formatList(r.out, numbers))

	r.out.Printf("  Remove(99) found:  %v\n", numbers.Remove(99))

	// ── Out of range ──────────────────────────────────────────────────────────
	err := numbers.RemoveAt(10)
	var idxErr *list.IndexError
	switch {
	case errors.As(err, &idxErr):
		r.out.Printf("  RemoveAt(10):      %v\n", err)
		r.out.Printf("  index=%d len=%d\n", idxErr.Index, idxErr.Len)
		r.out.Printf("  errors.Is(err, list.ErrIndexOutOfRange): %v\n", errors.Is(err, list.ErrIndexOutOfRange))
	case err == nil:
		return fmt.Errorf("RemoveAt(10) on %d elements succeeded", numbers.Len())
	default:
		return fmt.Errorf("RemoveAt(10): unexpected error: %w", err)
	}

	r.out.Println()
	for el := range numbers.Values() {
		r.out.Printf("  %d\n", el)
	}
	return nil
}
