package runtime

import "github.com/go-webidl/webidl/internal/ordered"

// Record backs the IDL `record<K, V>` type: an ordered collection of
// string keys to V values, compared by code-unit equality (spec.md §4.4).
// Go string equality already operates byte-for-byte on the UTF-8
// representation, which agrees with UTF-16 code-unit equality for every
// string that round-trips through ascii.CodeUnits/FromCodeUnits, so no
// special comparator is needed here.
type Record[V any] struct {
	m *ordered.Map[string, V]
}

// NewRecord creates an empty Record.
func NewRecord[V any]() *Record[V] {
	return &Record[V]{m: ordered.NewMap[string, V]()}
}

func (r *Record[V]) Len() int { return r.m.Len() }

func (r *Record[V]) Get(key string) (V, bool) { return r.m.Get(key) }

func (r *Record[V]) Has(key string) bool { return r.m.Has(key) }

func (r *Record[V]) Set(key string, value V) { r.m.Set(key, value) }

func (r *Record[V]) Delete(key string) bool { return r.m.Delete(key) }

// Keys returns the record's keys in insertion order.
func (r *Record[V]) Keys() []string { return r.m.Keys() }

// Entries calls fn for every key/value pair in insertion order.
func (r *Record[V]) Entries(fn func(key string, value V) bool) { r.m.Entries(fn) }

// EnsureCapacity pre-allocates room for at least n additional entries
// (spec.md §4.4).
func (r *Record[V]) EnsureCapacity(n int) { r.m.EnsureCapacity(n) }
