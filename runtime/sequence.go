package runtime

// Sequence is an ordered collection preserving insertion order (spec.md
// §4.4), backing the IDL `sequence<T>` type. It is a thin wrapper over a
// Go slice rather than its own data structure: sequence<T> has no identity
// distinct from "an ordered list of T", so the wrapper exists mainly to
// give EnsureCapacity a documented home alongside Record's.
type Sequence[T any] struct {
	items []T
}

// NewSequence creates a Sequence from an existing slice of items, copying
// it so later mutation of the caller's slice does not alias the Sequence.
func NewSequence[T any](items []T) *Sequence[T] {
	s := &Sequence[T]{}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of items.
func (s *Sequence[T]) Len() int { return len(s.items) }

// At returns the item at index i.
func (s *Sequence[T]) At(i int) T { return s.items[i] }

// Append adds items to the end of the sequence.
func (s *Sequence[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// Items returns the sequence's contents as a slice. The returned slice is
// a copy.
func (s *Sequence[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// EnsureCapacity pre-allocates room for at least n additional items, for
// bulk insertion performance (spec.md §4.4).
func (s *Sequence[T]) EnsureCapacity(n int) {
	if cap(s.items)-len(s.items) >= n {
		return
	}
	grown := make([]T, len(s.items), len(s.items)+n)
	copy(grown, s.items)
	s.items = grown
}
