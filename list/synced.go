package list

import (
	"iter"
	"slices"
	"sync"
)

// Synced guards a List with a sync.RWMutex. Reads (Get, Contains, IndexOf,
// Len, Cap, String, Slice and the iterators) share the read lock;
// everything else takes the write lock. The iterators (All, Values,
// ForEach, Where) walk a snapshot, so their callbacks may call back into
// the Synced without deadlocking.
//
// The wrapped list must not be touched directly once it is handed over.
type Synced[T any] struct {
	mu   sync.RWMutex
	list *List[T]
}

// NewSynced wraps l. A nil l starts from an empty list with structural
// equality.
func NewSynced[T any](l *List[T]) *Synced[T] {
	if l == nil {
		l = &List[T]{}
	}
	return &Synced[T]{list: l}
}

func (s *Synced[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Add(item)
}

func (s *Synced[T]) AddRange(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.AddRange(items...)
}

// AddSeq drains seq before taking the lock, so seq may itself read from s.
func (s *Synced[T]) AddSeq(seq iter.Seq[T]) {
	items := slices.Collect(seq)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.AddRange(items...)
}

func (s *Synced[T]) Insert(index int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Insert(index, item)
}

func (s *Synced[T]) Set(index int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Set(index, item)
}

func (s *Synced[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Remove(item)
}

func (s *Synced[T]) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.RemoveAt(index)
}

func (s *Synced[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Clear()
}

func (s *Synced[T]) Get(index int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Get(index)
}

func (s *Synced[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Contains(item)
}

func (s *Synced[T]) IndexOf(item T) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.IndexOf(item)
}

func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Len()
}

func (s *Synced[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Cap()
}

func (s *Synced[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.String()
}

// Slice returns a copy of the elements taken under the read lock.
func (s *Synced[T]) Slice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Slice()
}

// Values yields a snapshot taken when Values is called, so the lock is
// not held while the caller's loop body runs.
func (s *Synced[T]) Values() iter.Seq[T] {
	return slices.Values(s.Slice())
}

// All yields index/value pairs from a snapshot taken when All is called.
func (s *Synced[T]) All() iter.Seq2[int, T] {
	return slices.All(s.Slice())
}

// ForEach calls fn for every element of a snapshot.
func (s *Synced[T]) ForEach(fn func(T)) {
	for _, v := range s.Slice() {
		fn(v)
	}
}

// Where lazily yields the snapshot elements for which pred returns true.
func (s *Synced[T]) Where(pred func(T) bool) iter.Seq[T] {
	snapshot := s.Slice()
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Update runs fn with exclusive access to the underlying list, for
// compound operations that must be atomic (check-then-act).
func (s *Synced[T]) Update(fn func(l *List[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.list)
}
