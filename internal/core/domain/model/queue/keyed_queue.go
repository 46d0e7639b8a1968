package queue

import (
	"maps"
	"slices"
)

// KeyedQueue maps unique string keys to values of type V.
//
// The zero value is not usable; create instances with New.
type KeyedQueue[V any] struct {
	items map[string]V
}

// New creates an empty KeyedQueue.
func New[V any]() *KeyedQueue[V] {
	return &KeyedQueue[V]{items: make(map[string]V)}
}

// Save inserts value under key, replacing any existing entry.
func (q *KeyedQueue[V]) Save(key string, value V) {
	q.items[key] = value
}

// Read returns the value stored under key. The boolean is false when the key is absent,
// in which case the zero value of V is returned.
func (q *KeyedQueue[V]) Read(key string) (V, bool) {
	value, ok := q.items[key]
	return value, ok
}

// Remove deletes the entry for key and returns the value it held. Removing an absent
// key is a no-op reported by a false boolean.
func (q *KeyedQueue[V]) Remove(key string) (V, bool) {
	value, ok := q.items[key]
	if ok {
		delete(q.items, key)
	}
	return value, ok
}

// Len returns the number of entries.
func (q *KeyedQueue[V]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no entries.
func (q *KeyedQueue[V]) IsEmpty() bool {
	return len(q.items) == 0
}

// Keys returns the keys in ascending order.
func (q *KeyedQueue[V]) Keys() []string {
	return slices.Sorted(maps.Keys(q.items))
}

// Snapshot returns a shallow copy of the entries. The copy is never nil.
func (q *KeyedQueue[V]) Snapshot() map[string]V {
	return maps.Clone(q.items)
}
