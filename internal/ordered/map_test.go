package ordered

import (
	"reflect"
	"testing"
)

func TestMapSetGetHas(t *testing.T) {
	m := NewMap[string, int]()
	if m.Has("a") {
		t.Fatal("empty map reports Has(a) = true")
	}
	m.Set("a", 1)
	if !m.Has("a") {
		t.Fatal("Has(a) = false after Set")
	}
	v, ok := m.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("Get(missing) reported found")
	}
}

func TestMapPreservesInsertionOrderAndUpdatePosition(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)
	m.Set("a", 10) // update, must keep its original position

	if got, want := m.Keys(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	v, _ := m.Get("a")
	if v != 10 {
		t.Fatalf("Get(a) after update = %d, want 10", v)
	}
}

func TestMapDeleteShiftsIndices(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	if !m.Delete("a") {
		t.Fatal("Delete(a) = false, want true")
	}
	if m.Delete("a") {
		t.Fatal("second Delete(a) = true, want false")
	}
	if got, want := m.Keys(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() after delete = %v, want %v", got, want)
	}
	// b and c must still resolve correctly after a's removal shifted them.
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) after delete = %d, %v, want 2, true", v, ok)
	}
	if v, ok := m.Get("c"); !ok || v != 3 {
		t.Fatalf("Get(c) after delete = %d, %v, want 3, true", v, ok)
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", m.Len())
	}
	if m.Has("a") {
		t.Fatal("Has(a) after Clear = true")
	}
}

func TestMapEntriesStopsEarly(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Entries(func(k string, v int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if got, want := seen, []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries stopped at %v, want %v", got, want)
	}
}

func TestMapKeysReturnsCopy(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"
	if got := m.Keys()[0]; got != "a" {
		t.Fatalf("mutating Keys() result affected the map: got %q", got)
	}
}

func TestMapEnsureCapacity(t *testing.T) {
	m := NewMap[string, int]()
	m.EnsureCapacity(10)
	for i := 0; i < 10; i++ {
		m.Set(string(rune('a'+i)), i)
	}
	if m.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", m.Len())
	}
}
