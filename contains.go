package main

import "github.com/marcodamonte/concurrency/generic-list/list"

func demoContains(r *runner) error {
	numbers := list.New(10, 20, 30, 40)
	for _, n := range []int{10, 11, 20} {
		r.out.Printf("  Contains(%d) = %v\n", n, numbers.Contains(n))
	}

	// Student.Equal compares fields, so a fresh value is found.
	students := list.NewEqualer(sampleStudents()...)
	for _, s := range []Student{{ID: 2, Name: "Steve"}, {ID: 2, Name: "Bill"}} {
		r.out.Printf("  Contains(%s) = %v\n", s.String(), students.Contains(s))
	}
	return nil
}
