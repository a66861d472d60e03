package list

import "iter"

// Collect returns a list holding the values produced by seq, compared
// with ==.
func Collect[T comparable](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.AddSeq(seq)
	return l
}

// AddSeq appends every value produced by seq, in order.
func (l *List[T]) AddSeq(seq iter.Seq[T]) {
	for v := range seq {
		l.Add(v)
	}
}

// All yields index/value pairs in order. Each step reads the list as it is
// at that moment; the caller must not mutate it mid-range.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// ForEach calls fn for every element in order.
func (l *List[T]) ForEach(fn func(T)) {
	for _, v := range l.items {
		fn(v)
	}
}

// Where lazily yields the elements for which pred returns true.
func (l *List[T]) Where(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range l.Values() {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}
