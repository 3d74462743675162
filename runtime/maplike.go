package runtime

import "github.com/go-webidl/webidl/internal/ordered"

const inlineCapacity = 4

// Maplike backs the IDL `maplike<K, V>` declaration (spec.md §4.4): small-
// size-optimized storage holds up to four entries inline with O(n) linear
// lookup and zero heap allocation for the backing store itself; the fifth
// insertion spills the whole collection into an ordered.Map and all
// operations delegate there from then on. A readonly Maplike rejects every
// mutating call with ErrReadonlyMap.
type Maplike[K comparable, V any] struct {
	readonly bool

	n          int
	inlineKeys [inlineCapacity]K
	inlineVals [inlineCapacity]V

	spilled bool
	spill   *ordered.Map[K, V]
}

// NewMaplike creates an empty, mutable Maplike.
func NewMaplike[K comparable, V any]() *Maplike[K, V] {
	return &Maplike[K, V]{}
}

// NewReadonlyMaplike creates a Maplike pre-populated from an ordered list
// of key/value pairs (the order a `maplike` iterator would see them in)
// that rejects all subsequent mutation.
func NewReadonlyMaplike[K comparable, V any](keys []K, values []V) *Maplike[K, V] {
	m := &Maplike[K, V]{readonly: true}
	for i := range keys {
		m.setUnchecked(keys[i], values[i])
	}
	return m
}

func (m *Maplike[K, V]) Len() int {
	if m.spilled {
		return m.spill.Len()
	}
	return m.n
}

func (m *Maplike[K, V]) Has(key K) bool {
	if m.spilled {
		return m.spill.Has(key)
	}
	_, ok := m.inlineIndex(key)
	return ok
}

func (m *Maplike[K, V]) Get(key K) (V, bool) {
	if m.spilled {
		return m.spill.Get(key)
	}
	if i, ok := m.inlineIndex(key); ok {
		return m.inlineVals[i], true
	}
	var zero V
	return zero, false
}

func (m *Maplike[K, V]) inlineIndex(key K) (int, bool) {
	for i := 0; i < m.n; i++ {
		if m.inlineKeys[i] == key {
			return i, true
		}
	}
	return 0, false
}

// Set inserts or updates key's value. Returns ErrReadonlyMap if m is
// readonly.
func (m *Maplike[K, V]) Set(key K, value V) error {
	if m.readonly {
		return ErrReadonlyMap
	}
	m.setUnchecked(key, value)
	return nil
}

func (m *Maplike[K, V]) setUnchecked(key K, value V) {
	if m.spilled {
		m.spill.Set(key, value)
		return
	}
	if i, ok := m.inlineIndex(key); ok {
		m.inlineVals[i] = value
		return
	}
	if m.n < inlineCapacity {
		m.inlineKeys[m.n] = key
		m.inlineVals[m.n] = value
		m.n++
		return
	}
	m.spillNow()
	m.spill.Set(key, value)
}

func (m *Maplike[K, V]) spillNow() {
	m.spill = ordered.NewMap[K, V]()
	for i := 0; i < m.n; i++ {
		m.spill.Set(m.inlineKeys[i], m.inlineVals[i])
	}
	m.spilled = true
	m.n = 0
}

// Delete removes key, if present. Returns ErrReadonlyMap if m is readonly.
func (m *Maplike[K, V]) Delete(key K) (bool, error) {
	if m.readonly {
		return false, ErrReadonlyMap
	}
	if m.spilled {
		return m.spill.Delete(key), nil
	}
	i, ok := m.inlineIndex(key)
	if !ok {
		return false, nil
	}
	for j := i; j < m.n-1; j++ {
		m.inlineKeys[j] = m.inlineKeys[j+1]
		m.inlineVals[j] = m.inlineVals[j+1]
	}
	m.n--
	var zeroK K
	var zeroV V
	m.inlineKeys[m.n] = zeroK
	m.inlineVals[m.n] = zeroV
	return true, nil
}

// Clear removes every entry. Returns ErrReadonlyMap if m is readonly.
func (m *Maplike[K, V]) Clear() error {
	if m.readonly {
		return ErrReadonlyMap
	}
	m.n = 0
	m.spilled = false
	m.spill = nil
	return nil
}

// Keys returns the map's keys in insertion order.
func (m *Maplike[K, V]) Keys() []K {
	if m.spilled {
		return m.spill.Keys()
	}
	out := make([]K, m.n)
	copy(out, m.inlineKeys[:m.n])
	return out
}

// Entries calls fn for every key/value pair in insertion order, stopping
// early if fn returns false.
func (m *Maplike[K, V]) Entries(fn func(key K, value V) bool) {
	if m.spilled {
		m.spill.Entries(fn)
		return
	}
	for i := 0; i < m.n; i++ {
		if !fn(m.inlineKeys[i], m.inlineVals[i]) {
			return
		}
	}
}

// IsReadonly reports whether m rejects mutation.
func (m *Maplike[K, V]) IsReadonly() bool { return m.readonly }
