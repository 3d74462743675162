package runtime

import "testing"

func TestRecordSetGetHasDelete(t *testing.T) {
	r := NewRecord[int]()
	if r.Len() != 0 {
		t.Fatalf("NewRecord().Len() = %d, want 0", r.Len())
	}
	r.Set("a", 1)
	r.Set("b", 2)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if v, ok := r.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if !r.Has("b") {
		t.Error("Has(b) = false")
	}
	if r.Has("missing") {
		t.Error("Has(missing) = true")
	}
	if !r.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if r.Has("a") {
		t.Error("a still present after Delete")
	}
	if r.Delete("a") {
		t.Error("Delete(a) a second time should return false")
	}
}

func TestRecordKeysAndEntriesInsertionOrder(t *testing.T) {
	r := NewRecord[int]()
	r.Set("z", 26)
	r.Set("a", 1)
	r.Set("m", 13)
	keys := r.Keys()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}

	var seen []string
	r.Entries(func(key string, value int) bool {
		seen = append(seen, key)
		return true
	})
	for i, k := range want {
		if seen[i] != k {
			t.Fatalf("Entries() visited = %v, want %v", seen, want)
		}
	}
}

func TestRecordEntriesEarlyStop(t *testing.T) {
	r := NewRecord[int]()
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("c", 3)
	var count int
	r.Entries(func(key string, value int) bool {
		count++
		return key != "b"
	})
	if count != 2 {
		t.Errorf("Entries() should have stopped after 2 callbacks, got %d", count)
	}
}

func TestRecordEnsureCapacity(t *testing.T) {
	r := NewRecord[int]()
	r.EnsureCapacity(8)
	r.Set("a", 1)
	if v, ok := r.Get("a"); !ok || v != 1 {
		t.Errorf("Set after EnsureCapacity misbehaved: %d, %v", v, ok)
	}
}
