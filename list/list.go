// Package list provides List[T], a growable, ordered, index-addressable
// collection backed by a single contiguous slice.
//
// The zero value is an empty list ready to use:
//
//	var l list.List[int]
//	l.Add(1)
//	l.AddRange(2, 3, 4)
//	v, err := l.Get(0)      // 1, nil
//	err = l.RemoveAt(10)    // *IndexError, errors.Is(err, ErrIndexOutOfRange)
//
// A List is not safe for concurrent use. Serialize access yourself or wrap
// it with Synced.
package list

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// defaultCapacity is the capacity allocated by the first append into an
// empty list.
const defaultCapacity = 4

// EqualFunc reports whether a and b should be treated as the same element.
// It drives Contains, IndexOf and Remove.
type EqualFunc[T any] func(a, b T) bool

// Equaler is implemented by element types that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// List is a dynamic array of T.
//
//	items[:len]  → logically present elements, in order
//	items[len:cap] → spare room; always holds zero values
type List[T any] struct {
	items []T
	eq    EqualFunc[T]

	// onGrow, when set, is called after every reallocation with the old
	// and new capacity.
	onGrow func(oldCap, newCap int)
}

// New returns a list holding a copy of items, compared with ==.
func New[T comparable](items ...T) *List[T] {
	return NewFunc(func(a, b T) bool { return a == b }, items...)
}

// NewFunc returns a list holding a copy of items, compared with eq.
// A nil eq falls back to structural equality (reflect.DeepEqual).
func NewFunc[T any](eq EqualFunc[T], items ...T) *List[T] {
	l := &List[T]{eq: eq}
	l.AddRange(items...)
	return l
}

// NewEqualer returns a list whose elements are compared with their own
// Equal method.
func NewEqualer[T Equaler[T]](items ...T) *List[T] {
	return NewFunc(func(a, b T) bool { return a.Equal(b) }, items...)
}

// OnGrow registers fn to be called whenever the backing array is
// reallocated. Pass nil to stop observing.
func (l *List[T]) OnGrow(fn func(oldCap, newCap int)) { l.onGrow = fn }

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return len(l.items) }

// Cap returns the number of elements the list can hold before it must
// reallocate.
func (l *List[T]) Cap() int { return cap(l.items) }

// Add appends item to the end of the list.
func (l *List[T]) Add(item T) {
	l.Grow(1)
	l.items = append(l.items, item)
}

// AddRange appends every element of items, in order. It is a no-op when
// items is empty.
func (l *List[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	l.Grow(len(items))
	l.items = append(l.items, items...)
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, &IndexError{Op: "get", Index: index, Len: len(l.items)}
	}
	return l.items[index], nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Op: "set", Index: index, Len: len(l.items)}
	}
	l.items[index] = item
	return nil
}

// Insert places item at index, shifting the elements at [index, Len())
// one position to the right. index == Len() appends.
func (l *List[T]) Insert(index int, item T) error {
	n := len(l.items)
	if index < 0 || index > n {
		return &IndexError{Op: "insert", Index: index, Len: n, Inclusive: true}
	}
	l.Grow(1)
	l.items = l.items[:n+1]
	copy(l.items[index+1:], l.items[index:n]) // copy handles the overlap
	l.items[index] = item
	return nil
}

// RemoveAt removes the element at index, shifting later elements one
// position to the left.
func (l *List[T]) RemoveAt(index int) error {
	n := len(l.items)
	if index < 0 || index >= n {
		return &IndexError{Op: "removeAt", Index: index, Len: n}
	}
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[n-1] = zero // don't pin the removed value through the tail slot
	l.items = l.items[:n-1]
	return nil
}

// Remove removes the first element equal to item and reports whether one
// was found. Later duplicates are left in place.
func (l *List[T]) Remove(item T) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	// i is in range, RemoveAt cannot fail.
	_ = l.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	eq := l.equal()
	for i, v := range l.items {
		if eq(v, item) {
			return i
		}
	}
	return -1
}

// Contains reports whether some element equals item.
func (l *List[T]) Contains(item T) bool { return l.IndexOf(item) >= 0 }

// Clear removes all elements but keeps the allocated capacity.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Grow makes room for at least n more elements without another
// reallocation. Capacity doubles (starting at 4) until it fits, so a run
// of appends costs O(1) amortized per element.
//
// Like slices.Grow, it panics if Len()+n overflows int.
func (l *List[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if n > math.MaxInt-len(l.items) {
		panic("list: Grow: len out of range")
	}
	need := len(l.items) + n
	oldCap := cap(l.items)
	if need <= oldCap {
		return
	}

	newCap := nextCap(oldCap, need)
	grown := make([]T, len(l.items), newCap)
	copy(grown, l.items)
	l.items = grown

	if l.onGrow != nil {
		l.onGrow(oldCap, newCap)
	}
}

// nextCap doubles oldCap until it holds need. Once doubling would pass
// math.MaxInt it settles for need exactly.
func nextCap(oldCap, need int) int {
	newCap := defaultCapacity
	if oldCap > 0 {
		newCap = oldCap
	}
	for newCap < need {
		if newCap > math.MaxInt/2 {
			return need
		}
		newCap *= 2
	}
	return newCap
}

// Slice returns a copy of the elements in order. The result never
// aliases the list's backing array.
func (l *List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// String formats the list like fmt formats a slice: [a b c].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// equal returns the list's comparison, defaulting to structural equality
// for zero-value lists and NewFunc(nil, ...).
func (l *List[T]) equal() EqualFunc[T] {
	if l.eq != nil {
		return l.eq
	}
	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}
