package policy

import (
	"testing"
)

// FuzzLRUInvariants drives a small LRU with byte-encoded operations and
// checks the recency list and the index never disagree.
//
// Each operation is two bytes: opcode and key.
func FuzzLRUInvariants(f *testing.F) {
	f.Add(uint8(2), false, []byte{0, 1, 0, 2, 0, 3, 0, 4})
	f.Add(uint8(0), false, []byte{0, 1, 1, 1, 2, 1, 3, 1})
	f.Add(uint8(3), true, []byte{0, 9, 0, 8, 1, 9, 0, 7, 0, 6, 2, 8})

	f.Fuzz(func(t *testing.T, capacity uint8, strict bool, data []byte) {
		capacity %= 16
		var opts []Option
		if strict {
			opts = append(opts, WithStrictCapacity())
		}
		l := NewLRU[byte, int](int(capacity), opts...)

		for i := 0; i+1 < len(data); i += 2 {
			key := data[i+1] % 32
			switch data[i] % 3 {
			case 0:
				before := l.Size()
				_, existed := l.Peek(key)
				if !l.Set(key, i) {
					t.Fatalf("set %d rejected", key)
				}
				if existed && l.Size() != before {
					t.Fatalf("overwrite changed size %d -> %d", before, l.Size())
				}
				if got := l.Keys()[0]; got != key {
					t.Fatalf("set %d: most recent is %d", key, got)
				}
			case 1:
				if _, ok := l.Get(key); ok {
					if got := l.Keys()[0]; got != key {
						t.Fatalf("get %d: most recent is %d", key, got)
					}
				}
			case 2:
				before := l.Size()
				_, ok := l.Pop(key)
				want := before
				if ok {
					want--
				}
				if l.Size() != want {
					t.Fatalf("pop %d: size %d, want %d", key, l.Size(), want)
				}
			}

			checkInvariants(t, l, int(capacity), strict)
		}
	})
}

func checkInvariants(t *testing.T, l *LRU[byte, int], capacity int, strict bool) {
	t.Helper()

	keys := l.Keys()
	if len(keys) != l.Size() || len(l.items) != l.Size() {
		t.Fatalf("size %d, keys %d, index %d", l.Size(), len(keys), len(l.items))
	}
	seen := make(map[byte]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("key %d listed twice", k)
		}
		seen[k] = true
		if _, ok := l.items[k]; !ok {
			t.Fatalf("key %d listed but not indexed", k)
		}
	}

	if capacity == 0 {
		return
	}
	limit := capacity + 1
	if strict {
		limit = capacity
	}
	if l.Size() > limit {
		t.Fatalf("size %d exceeds limit %d", l.Size(), limit)
	}
}
