package runtime

import (
	"errors"
	"testing"
)

func TestMaplikeInlineBasics(t *testing.T) {
	m := NewMaplike[string, int]()
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
	if err := m.Set("a", 1); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := m.Set("b", 2); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if !m.Has("b") {
		t.Error("Has(b) = false")
	}
	if m.Has("z") {
		t.Error("Has(z) = true")
	}
}

func TestMaplikeSetOverwritesExistingKey(t *testing.T) {
	m := NewMaplike[string, int]()
	m.Set("a", 1)
	m.Set("a", 2)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after overwriting a key", m.Len())
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
}

func TestMaplikeSpillsPastInlineCapacity(t *testing.T) {
	m := NewMaplike[string, int]()
	keys := []string{"a", "b", "c", "d", "e"}
	for i, k := range keys {
		if err := m.Set(k, i); err != nil {
			t.Fatalf("Set(%s) error: %v", k, err)
		}
	}
	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 after spilling", m.Len())
	}
	for i, k := range keys {
		if v, ok := m.Get(k); !ok || v != i {
			t.Errorf("Get(%s) = %d, %v, want %d, true", k, v, ok, i)
		}
	}
	if gotKeys := m.Keys(); len(gotKeys) != 5 {
		t.Fatalf("Keys() len = %d, want 5", len(gotKeys))
	} else {
		for i, k := range keys {
			if gotKeys[i] != k {
				t.Errorf("Keys()[%d] = %s, want %s (insertion order preserved across spill)", i, gotKeys[i], k)
			}
		}
	}
}

func TestMaplikeDeleteInlineShiftsRemaining(t *testing.T) {
	m := NewMaplike[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	ok, err := m.Delete("b")
	if err != nil || !ok {
		t.Fatalf("Delete(b) = %v, %v, want true, nil", ok, err)
	}
	if m.Has("b") {
		t.Error("b still present after Delete")
	}
	if v, ok := m.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) after deleting b = %d, %v, want 3, true", v, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	ok, err = m.Delete("b")
	if err != nil || ok {
		t.Errorf("Delete(b) a second time = %v, %v, want false, nil", ok, err)
	}
}

func TestMaplikeDeleteAfterSpill(t *testing.T) {
	m := NewMaplike[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m.Set(k, i)
	}
	ok, err := m.Delete("c")
	if err != nil || !ok {
		t.Fatalf("Delete(c) = %v, %v, want true, nil", ok, err)
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if m.Has("c") {
		t.Error("c still present after Delete")
	}
}

func TestMaplikeClear(t *testing.T) {
	m := NewMaplike[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m.Set(k, i)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", m.Len())
	}
	m.Set("fresh", 1)
	if v, ok := m.Get("fresh"); !ok || v != 1 {
		t.Errorf("Set after Clear misbehaved: %d, %v", v, ok)
	}
}

func TestMaplikeEntriesEarlyStop(t *testing.T) {
	m := NewMaplike[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	var visited []string
	m.Entries(func(key string, value int) bool {
		visited = append(visited, key)
		return key != "b"
	})
	if len(visited) != 2 {
		t.Errorf("Entries() visited %d keys, want 2 (stop at b)", len(visited))
	}
}

func TestNewReadonlyMaplikeRejectsMutation(t *testing.T) {
	m := NewReadonlyMaplike([]string{"a", "b"}, []int{1, 2})
	if !m.IsReadonly() {
		t.Fatal("IsReadonly() = false")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if err := m.Set("c", 3); !errors.Is(err, ErrReadonlyMap) {
		t.Errorf("Set() on readonly map = %v, want ErrReadonlyMap", err)
	}
	if _, err := m.Delete("a"); !errors.Is(err, ErrReadonlyMap) {
		t.Errorf("Delete() on readonly map = %v, want ErrReadonlyMap", err)
	}
	if err := m.Clear(); !errors.Is(err, ErrReadonlyMap) {
		t.Errorf("Clear() on readonly map = %v, want ErrReadonlyMap", err)
	}
}
