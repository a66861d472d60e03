package main

import "github.com/marcodamonte/concurrency/generic-list/list"

func demoAdding(r *runner) error {
	// ── Add, one element at a time ────────────────────────────────────────────
	primes := list.New[int]()
	r.watch("primes", primes)
	for _, p := range []int{1, 3, 5, 7, 11, 13, 17} {
		primes.Add(p)
	}
	for p := range primes.Values() {
		r.out.Printf("  A few of the prime numbers: %d\n", p)
	}

	// ── nil elements ──────────────────────────────────────────────────────────
	// A Go string has no nil; a list of *string does, and stores it like any
	// other element.
	cities := list.New[*string]()
	r.watch("cities", cities)
	for _, name := range []string{"New York", "London", "Mumbai", "Chicago"} {
		cities.Add(&name)
	}
	cities.Add(nil)

	r.out.Println()
	for c := range cities.Values() {
		r.out.Printf("  A few of the great cities: %s\n", deref(c))
	}

	// ── Initial elements ──────────────────────────────────────────────────────
	bigCities := list.New("New York", "London", "Mumbai", "Chicago", "San Francisco", "Berlin", "Kiev")

	r.out.Println()
	for c := range bigCities.Values() {
		r.out.Printf("  A few of the great big cities: %s\n", c)
	}

	// ── Custom element type ───────────────────────────────────────────────────
	students := list.NewEqualer(sampleStudents()...)

	r.out.Println()
	r.out.Printf("  students: len=%d cap=%d\n", students.Len(), students.Cap())

	// ── AddRange — from a slice, then from another list ───────────────────────
	popular := list.New[string]()
	r.watch("popularCities", popular)
	popular.AddRange("Mumbai", "London", "New York")

	favourite := list.New[string]()
	r.watch("favouriteCities", favourite)
	favourite.AddRange(popular.Slice()...)

	r.out.Printf("  popularCities:   %s\n", formatList(r.out, popular))
	r.out.Printf("  favouriteCities: %s\n", formatList(r.out, favourite))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
