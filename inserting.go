package main

import "github.com/marcodamonte/concurrency/generic-list/list"

func demoInserting(r *runner) error {
	numbers := list.New(10, 20, 30, 40)
	r.watch("numbers", numbers)

	// The list is full (len == cap), so Insert grows it before shifting.
	if err := numbers.Insert(1, 11); err != nil {
		return err
	}

	for v := range numbers.Values() {
		r.out.Printf("  %d\n", v)
	}
	r.out.Printf("  len=%d cap=%d\n", numbers.Len(), numbers.Cap())
	return nil
}
