package list_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/marcodamonte/concurrency/generic-list/list"
)

// ── Concurrent access ────────────────────────────────────────────────────────

// TestSyncedConcurrentAdd runs writers and readers together; run with -race.
func TestSyncedConcurrentAdd(t *testing.T) {
	t.Parallel()

	const writers = 8
	const perWriter = 250

	s := list.NewSynced(list.New[int]())

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Add(w*perWriter + i)
			}
		}(w)
	}

	// Readers race with the writers on purpose.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = s.Contains(i)
				_, _ = s.Get(0)
				_ = s.Len()
			}
		}()
	}

	wg.Wait()

	if got := s.Len(); got != writers*perWriter {
		t.Fatalf("Len() = %d; want %d", got, writers*perWriter)
	}
	for v := 0; v < writers*perWriter; v++ {
		if !s.Contains(v) {
			t.Fatalf("Contains(%d) = false after all writers finished", v)
		}
	}
}

// TestSyncedUpdateIsAtomic uses Update for a check-then-act that would race
// if split into Contains + Add.
func TestSyncedUpdateIsAtomic(t *testing.T) {
	t.Parallel()

	s := list.NewSynced(list.New[string]())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(l *list.List[string]) {
				if !l.Contains("once") {
					l.Add("once")
				}
			})
		}()
	}
	wg.Wait()

	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}

// ── Delegation ───────────────────────────────────────────────────────────────

func TestSyncedDelegates(t *testing.T) {
	t.Parallel()

	s := list.NewSynced(list.New(10, 20, 30, 40, 10))

	if !s.Remove(10) {
		t.Fatal("Remove(10) = false; want true")
	}
	if err := s.RemoveAt(2); err != nil {
		t.Fatalf("RemoveAt(2): %v", err)
	}
	if err := s.Insert(0, 5); err != nil {
		t.Fatalf("Insert(0, 5): %v", err)
	}
	if err := s.Set(1, 21); err != nil {
		t.Fatalf("Set(1, 21): %v", err)
	}
	s.AddRange(50, 60)

	if got, want := s.Slice(), []int{5, 21, 30, 10, 50, 60}; !slices.Equal(got, want) {
		t.Errorf("Slice() = %v; want %v", got, want)
	}
	if got := s.IndexOf(30); got != 2 {
		t.Errorf("IndexOf(30) = %d; want 2", got)
	}

	if err := s.RemoveAt(10); !errors.Is(err, list.ErrIndexOutOfRange) {
		t.Errorf("RemoveAt(10) error = %v; want ErrIndexOutOfRange", err)
	}
	if _, err := s.Get(-1); !errors.Is(err, list.ErrIndexOutOfRange) {
		t.Errorf("Get(-1) error = %v; want ErrIndexOutOfRange", err)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", s.Len())
	}
}

// TestSyncedValuesIsSnapshot mutates inside the loop body; Values must not
// deadlock and must not observe the additions.
func TestSyncedValuesIsSnapshot(t *testing.T) {
	t.Parallel()

	s := list.NewSynced(list.New(1, 2, 3))

	var seen []int
	for v := range s.Values() {
		seen = append(seen, v)
		s.Add(v * 10)
	}

	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Errorf("seen = %v; want [1 2 3]", seen)
	}
	if s.Len() != 6 {
		t.Errorf("Len() = %d; want 6", s.Len())
	}
}

func TestNewSyncedNil(t *testing.T) {
	t.Parallel()

	s := list.NewSynced[[]byte](nil)
	s.Add([]byte("go"))
	if !s.Contains([]byte("go")) {
		t.Error("Contains(go) = false; want true via structural equality")
	}
}

// ── Iteration and formatting ─────────────────────────────────────────────────

// TestSyncedIterators mutates s from inside every callback; each iterator
// must walk the snapshot and release the lock first.
func TestSyncedIterators(t *testing.T) {
	t.Parallel()

	s := list.NewSynced(list.New(1, 2, 3, 4))

	var idx, vals []int
	for i, v := range s.All() {
		idx = append(idx, i)
		vals = append(vals, v)
		s.Add(v)
	}
	if !slices.Equal(idx, []int{0, 1, 2, 3}) || !slices.Equal(vals, []int{1, 2, 3, 4}) {
		t.Errorf("All() = %v/%v; want [0 1 2 3]/[1 2 3 4]", idx, vals)
	}

	sum := 0
	s.ForEach(func(v int) {
		sum += v
		_ = s.Contains(v)
	})
	if sum != 20 {
		t.Errorf("ForEach sum = %d; want 20", sum)
	}

	even := slices.Collect(s.Where(func(v int) bool { return v%2 == 0 }))
	if !slices.Equal(even, []int{2, 4, 2, 4}) {
		t.Errorf("Where(even) = %v; want [2 4 2 4]", even)
	}
}

func TestSyncedAddSeqCapString(t *testing.T) {
	t.Parallel()

	s := list.NewSynced(list.New(1))

	// seq reads s while AddSeq is running.
	s.AddSeq(func(yield func(int) bool) {
		for i := 2; i <= 3; i++ {
			if !yield(i + s.Len() - 1) {
				return
			}
		}
	})

	if got, want := s.String(), "[1 2 3]"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if s.Cap() < s.Len() {
		t.Errorf("Cap() = %d < Len() = %d", s.Cap(), s.Len())
	}
}
