// Package policy defines the eviction strategy contract and its implementations.
package policy

// Strategy defines the interface for eviction algorithms.
// A strategy owns both the stored values and the ordering state it uses to pick
// victims, so alternative policies only need to provide these four operations.
//
// Implementations are not safe for concurrent use.
type Strategy[K comparable, V any] interface {
	// Get returns the value for key and whether it was found.
	// A hit may update the strategy's ordering state (LRU promotes the key).
	Get(key K) (V, bool)

	// Set inserts or overwrites the value for key, evicting according to the
	// policy when a new key would exceed capacity. It reports whether the
	// value was accepted.
	Set(key K, value V) bool

	// Size returns the number of live entries.
	Size() int

	// Pop removes key and returns its value. The order of the remaining
	// entries is unchanged.
	Pop(key K) (V, bool)
}
