package main

import "fmt"

// Student is the custom element type used across the walkthrough.
type Student struct {
	ID   int
	Name string
}

// Equal compares both fields, so a List built with list.NewEqualer finds
// a student by value rather than by identity.
func (s Student) Equal(other Student) bool {
	return s.ID == other.ID && s.Name == other.Name
}

func (s Student) String() string { return fmt.Sprintf("%d, %s", s.ID, s.Name) }

func sampleStudents() []Student {
	return []Student{
		{ID: 1, Name: "Bill"},
		{ID: 2, Name: "Steve"},
		{ID: 3, Name: "Ram"},
		{ID: 4, Name: "Abdul"},
	}
}
