package policy

import (
	"container/list"

	"go.uber.org/zap"
)

// Compile-time check that LRU implements Strategy.
var _ Strategy[string, int] = (*LRU[string, int])(nil)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU implements the Least Recently Used (LRU) eviction strategy.
// The recency list runs from most recently used (front) to least recently
// used (back); every listed key has exactly one entry in items and vice versa.
type LRU[K comparable, V any] struct {
	capacity int
	strict   bool
	order    *list.List
	items    map[K]*list.Element
	onEvict  func(K, V)
	logger   *zap.Logger
}

// NewLRU creates a new LRU strategy.
// A capacity of zero (or less) disables eviction entirely.
func NewLRU[K comparable, V any](capacity int, opts ...Option) *LRU[K, V] {
	return NewLRUWithEvict[K, V](capacity, nil, opts...)
}

// NewLRUWithEvict creates a new LRU strategy that calls onEvict for every
// entry dropped to make room for a new key. Explicit Pop calls do not
// trigger the callback.
func NewLRUWithEvict[K comparable, V any](capacity int, onEvict func(K, V), opts ...Option) *LRU[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 0 {
		capacity = 0
	}
	return &LRU[K, V]{
		capacity: capacity,
		strict:   o.strict,
		order:    list.New(),
		items:    make(map[K]*list.Element),
		onEvict:  onEvict,
		logger:   o.logger,
	}
}

// Get returns the value for key and promotes it to most recently used.
// Reads never evict.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	elem, ok := l.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	l.order.MoveToFront(elem)
	return elem.Value.(*lruEntry[K, V]).value, true
}

// Set inserts or overwrites key and promotes it to most recently used.
// Overwriting never evicts. Inserting a new key first evicts the least
// recently used entry if the recency list is over the threshold.
// It always returns true.
func (l *LRU[K, V]) Set(key K, value V) bool {
	if elem, ok := l.items[key]; ok {
		elem.Value.(*lruEntry[K, V]).value = value
		l.order.MoveToFront(elem)
		return true
	}

	if l.overflowing() {
		l.evictOldest()
	}

	l.items[key] = l.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	return true
}

// Size returns the length of the recency list.
func (l *LRU[K, V]) Size() int {
	return l.order.Len()
}

// Pop removes key and returns its value.
func (l *LRU[K, V]) Pop(key K) (V, bool) {
	elem, ok := l.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	l.order.Remove(elem)
	delete(l.items, key)
	return elem.Value.(*lruEntry[K, V]).value, true
}

// Peek returns the value for key without updating its recency.
func (l *LRU[K, V]) Peek(key K) (V, bool) {
	elem, ok := l.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return elem.Value.(*lruEntry[K, V]).value, true
}

// Keys returns the tracked keys from most to least recently used.
func (l *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, l.order.Len())
	for elem := l.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

// Capacity returns the bound fixed at construction. Zero means unbounded.
func (l *LRU[K, V]) Capacity() int {
	return l.capacity
}

// Strict reports whether the strategy enforces an exact capacity bound.
func (l *LRU[K, V]) Strict() bool {
	return l.strict
}

// overflowing reports whether inserting one more key requires an eviction.
func (l *LRU[K, V]) overflowing() bool {
	if l.capacity == 0 {
		return false
	}
	if l.strict {
		return l.order.Len() >= l.capacity
	}
	return l.order.Len() > l.capacity
}

func (l *LRU[K, V]) evictOldest() {
	elem := l.order.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*lruEntry[K, V])
	l.order.Remove(elem)
	delete(l.items, ent.key)

	l.logger.Debug("evicted least recently used entry",
		zap.Any("key", ent.key),
		zap.Int("size", l.order.Len()),
		zap.Int("capacity", l.capacity),
	)
	if l.onEvict != nil {
		l.onEvict(ent.key, ent.value)
	}
}
