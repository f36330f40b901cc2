// Package keylock serializes admission decisions per contended key. Requests
// holding disjoint keys proceed in parallel; there is no global lock.
package keylock

import (
	"sort"
	"sync"
)

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*keyEntry
}

func New() *KeyLock {
	return &KeyLock{entries: make(map[string]*keyEntry)}
}

// Acquire blocks until all given keys are held and returns a release func.
// Keys are deduplicated and locked in sorted order, so two callers holding
// overlapping key sets cannot deadlock each other.
func (kl *KeyLock) Acquire(keys ...string) func() {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	held := make([]*keyEntry, 0, len(sorted))
	heldKeys := make([]string, 0, len(sorted))
	prev := ""
	for _, key := range sorted {
		if key == prev && len(held) > 0 {
			continue
		}
		prev = key

		kl.mu.Lock()
		e, ok := kl.entries[key]
		if !ok {
			e = &keyEntry{}
			kl.entries[key] = e
		}
		e.refs++
		kl.mu.Unlock()

		e.mu.Lock()
		held = append(held, e)
		heldKeys = append(heldKeys, key)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()

			kl.mu.Lock()
			held[i].refs--
			if held[i].refs == 0 {
				delete(kl.entries, heldKeys[i])
			}
			kl.mu.Unlock()
		}
	}
}
