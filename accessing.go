package main

import (
	"strconv"
	"strings"

	"github.com/marcodamonte/concurrency/generic-list/list"
)

func demoAccessing(r *runner) error {
	numbers := list.New(1, 2, 5, 7, 8, 10)

	// ── Get — zero-based index ────────────────────────────────────────────────
	for i := range 4 {
		v, err := numbers.Get(i)
		if err != nil {
			return err
		}
		r.out.Printf("  numbers[%d] = %d\n", i, v)
	}

	// ── ForEach ───────────────────────────────────────────────────────────────
	var seen []string
	numbers.ForEach(func(n int) { seen = append(seen, strconv.Itoa(n)) })
	r.out.Printf("\n  ForEach: %s\n", strings.Join(seen, ", "))

	// ── range over All — index and value ──────────────────────────────────────
	r.out.Println("\n  range numbers.All():")
	for i, v := range numbers.All() {
		r.out.Printf("    %d → %d\n", i, v)
	}
	return nil
}
