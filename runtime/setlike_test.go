package runtime

import (
	"errors"
	"testing"
)

func TestSetlikeInlineBasics(t *testing.T) {
	s := NewSetlike[string]()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if err := s.Add("a"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !s.Has("a") {
		t.Error("Has(a) = false")
	}
	if s.Has("z") {
		t.Error("Has(z) = true")
	}
}

func TestSetlikeAddIsIdempotent(t *testing.T) {
	s := NewSetlike[string]()
	s.Add("a")
	s.Add("a")
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after adding a duplicate", s.Len())
	}
}

func TestSetlikeSpillsPastInlineCapacity(t *testing.T) {
	s := NewSetlike[string]()
	values := []string{"a", "b", "c", "d", "e"}
	for _, v := range values {
		if err := s.Add(v); err != nil {
			t.Fatalf("Add(%s) error: %v", v, err)
		}
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 after spilling", s.Len())
	}
	got := s.Values()
	if len(got) != 5 {
		t.Fatalf("Values() len = %d, want 5", len(got))
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("Values()[%d] = %s, want %s (insertion order preserved across spill)", i, got[i], v)
		}
	}
}

func TestSetlikeDeleteInlineShiftsRemaining(t *testing.T) {
	s := NewSetlike[string]()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	ok, err := s.Delete("b")
	if err != nil || !ok {
		t.Fatalf("Delete(b) = %v, %v, want true, nil", ok, err)
	}
	if s.Has("b") {
		t.Error("b still present after Delete")
	}
	if !s.Has("c") {
		t.Error("c missing after deleting b")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSetlikeDeleteAfterSpill(t *testing.T) {
	s := NewSetlike[string]()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Add(v)
	}
	ok, err := s.Delete("c")
	if err != nil || !ok {
		t.Fatalf("Delete(c) = %v, %v, want true, nil", ok, err)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if s.Has("c") {
		t.Error("c still present after Delete")
	}
}

func TestSetlikeClear(t *testing.T) {
	s := NewSetlike[string]()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Add(v)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
}

func TestSetlikeEachEarlyStop(t *testing.T) {
	s := NewSetlike[string]()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	var visited []string
	s.Each(func(v string) bool {
		visited = append(visited, v)
		return v != "b"
	})
	if len(visited) != 2 {
		t.Errorf("Each() visited %d values, want 2 (stop at b)", len(visited))
	}
}

func TestNewReadonlySetlikeRejectsMutation(t *testing.T) {
	s := NewReadonlySetlike([]string{"a", "b"})
	if !s.IsReadonly() {
		t.Fatal("IsReadonly() = false")
	}
	if s.Len() != 2 || !s.Has("a") || !s.Has("b") {
		t.Fatalf("readonly Setlike not populated correctly: Len=%d", s.Len())
	}
	if err := s.Add("c"); !errors.Is(err, ErrReadonlySet) {
		t.Errorf("Add() on readonly set = %v, want ErrReadonlySet", err)
	}
	if _, err := s.Delete("a"); !errors.Is(err, ErrReadonlySet) {
		t.Errorf("Delete() on readonly set = %v, want ErrReadonlySet", err)
	}
	if err := s.Clear(); !errors.Is(err, ErrReadonlySet) {
		t.Errorf("Clear() on readonly set = %v, want ErrReadonlySet", err)
	}
}
