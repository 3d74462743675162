package ordered

import (
	"reflect"
	"testing"
)

func TestSetAddHasDelete(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(1) // duplicate, no-op for membership and order

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(1) || !s.Has(2) {
		t.Fatal("Has reports a missing member")
	}
	if s.Has(3) {
		t.Fatal("Has(3) = true, want false")
	}
	if !s.Delete(1) {
		t.Fatal("Delete(1) = false, want true")
	}
	if s.Has(1) {
		t.Fatal("Has(1) = true after Delete")
	}
}

func TestSetValuesPreservesInsertionOrder(t *testing.T) {
	s := NewSet[string]()
	s.Add("z")
	s.Add("a")
	s.Add("m")
	if got, want := s.Values(), []string{"z", "a", "m"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Clear()
	if s.Len() != 0 || s.Has(1) {
		t.Fatal("Clear did not empty the set")
	}
}

func TestSetEachStopsEarly(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(3)
	var seen []int
	s.Each(func(v int) bool {
		seen = append(seen, v)
		return v != 2
	})
	if got, want := seen, []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Each stopped at %v, want %v", got, want)
	}
}
