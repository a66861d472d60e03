package main

import "github.com/marcodamonte/concurrency/generic-list/list"

// Where is a plain linear scan; it yields lazily, so nothing is evaluated
// until the range loop pulls the next element.
func demoQuerying(r *runner) error {
	students := list.NewEqualer(sampleStudents()...)

	r.out.Println("  Name == \"Bill\":")
	for s := range students.Where(func(s Student) bool { return s.Name == "Bill" }) {
		r.out.Printf("    %s\n", s.String())
	}

	r.out.Println("  ID > 2:")
	for s := range students.Where(func(s Student) bool { return s.ID > 2 }) {
		r.out.Printf("    %s\n", s.String())
	}
	return nil
}
