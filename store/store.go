// Package store provides a key-value store fronted by a pluggable eviction
// strategy.
package store

import "evictkv/store/policy"

// Store forwards every operation to the strategy it was built with.
// It is not safe for concurrent use; callers that share a Store across
// goroutines must serialize access themselves.
type Store[K comparable, V any] struct {
	strategy policy.Strategy[K, V]
}

// New creates a Store backed by strategy.
func New[K comparable, V any](strategy policy.Strategy[K, V]) *Store[K, V] {
	return &Store[K, V]{strategy: strategy}
}

// NewLRU creates a Store backed by an LRU strategy.
// A capacity of zero means the store never evicts.
func NewLRU[K comparable, V any](capacity int, opts ...policy.Option) *Store[K, V] {
	return New[K, V](policy.NewLRU[K, V](capacity, opts...))
}

// Set adds or updates a key. It reports whether the strategy accepted the value.
func (s *Store[K, V]) Set(key K, value V) bool {
	return s.strategy.Set(key, value)
}

// Get returns the value for a key and whether it was found.
func (s *Store[K, V]) Get(key K) (V, bool) {
	return s.strategy.Get(key)
}

// Delete removes a key and returns the value it held.
func (s *Store[K, V]) Delete(key K) (V, bool) {
	return s.strategy.Pop(key)
}

// Size returns the number of entries currently held.
func (s *Store[K, V]) Size() int {
	return s.strategy.Size()
}
