package runtime

import "github.com/go-webidl/webidl/internal/ordered"

// Setlike backs the IDL `setlike<V>` declaration (spec.md §4.4), with the
// same small-size-optimized inline-then-spill storage strategy as Maplike.
type Setlike[T comparable] struct {
	readonly bool

	n       int
	inline  [inlineCapacity]T
	spilled bool
	spill   *ordered.Set[T]
}

// NewSetlike creates an empty, mutable Setlike.
func NewSetlike[T comparable]() *Setlike[T] {
	return &Setlike[T]{}
}

// NewReadonlySetlike creates a Setlike pre-populated from values (in
// iteration order) that rejects all subsequent mutation.
func NewReadonlySetlike[T comparable](values []T) *Setlike[T] {
	s := &Setlike[T]{readonly: true}
	for _, v := range values {
		s.addUnchecked(v)
	}
	return s
}

func (s *Setlike[T]) Len() int {
	if s.spilled {
		return s.spill.Len()
	}
	return s.n
}

func (s *Setlike[T]) Has(v T) bool {
	if s.spilled {
		return s.spill.Has(v)
	}
	_, ok := s.inlineIndex(v)
	return ok
}

func (s *Setlike[T]) inlineIndex(v T) (int, bool) {
	for i := 0; i < s.n; i++ {
		if s.inline[i] == v {
			return i, true
		}
	}
	return 0, false
}

// Add inserts v. Returns ErrReadonlySet if s is readonly.
func (s *Setlike[T]) Add(v T) error {
	if s.readonly {
		return ErrReadonlySet
	}
	s.addUnchecked(v)
	return nil
}

func (s *Setlike[T]) addUnchecked(v T) {
	if s.spilled {
		s.spill.Add(v)
		return
	}
	if _, ok := s.inlineIndex(v); ok {
		return
	}
	if s.n < inlineCapacity {
		s.inline[s.n] = v
		s.n++
		return
	}
	s.spillNow()
	s.spill.Add(v)
}

func (s *Setlike[T]) spillNow() {
	s.spill = ordered.NewSet[T]()
	for i := 0; i < s.n; i++ {
		s.spill.Add(s.inline[i])
	}
	s.spilled = true
	s.n = 0
}

// Delete removes v, if present. Returns ErrReadonlySet if s is readonly.
func (s *Setlike[T]) Delete(v T) (bool, error) {
	if s.readonly {
		return false, ErrReadonlySet
	}
	if s.spilled {
		return s.spill.Delete(v), nil
	}
	i, ok := s.inlineIndex(v)
	if !ok {
		return false, nil
	}
	for j := i; j < s.n-1; j++ {
		s.inline[j] = s.inline[j+1]
	}
	s.n--
	var zero T
	s.inline[s.n] = zero
	return true, nil
}

// Clear removes every member. Returns ErrReadonlySet if s is readonly.
func (s *Setlike[T]) Clear() error {
	if s.readonly {
		return ErrReadonlySet
	}
	s.n = 0
	s.spilled = false
	s.spill = nil
	return nil
}

// Values returns the set's members in insertion order.
func (s *Setlike[T]) Values() []T {
	if s.spilled {
		return s.spill.Values()
	}
	out := make([]T, s.n)
	copy(out, s.inline[:s.n])
	return out
}

// Each calls fn for every member in insertion order, stopping early if fn
// returns false.
func (s *Setlike[T]) Each(fn func(v T) bool) {
	if s.spilled {
		s.spill.Each(fn)
		return
	}
	for i := 0; i < s.n; i++ {
		if !fn(s.inline[i]) {
			return
		}
	}
}

// IsReadonly reports whether s rejects mutation.
func (s *Setlike[T]) IsReadonly() bool { return s.readonly }
