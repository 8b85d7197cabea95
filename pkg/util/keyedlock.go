package util

import "sync"

// KeyedLock serializes operations per string key. Turns for one user must not
// interleave; turns for different users may run concurrently.
//
// Entries are reference counted and removed once the last holder unlocks, so
// the map does not grow with the number of distinct keys ever seen.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	m    sync.Mutex
	refs int
}

// NewKeyedLock creates an empty KeyedLock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*lockEntry)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &lockEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()
	e.m.Lock()
}

// Unlock releases the mutex for key. Unlocking a never-locked key panics,
// same as sync.Mutex.
func (k *KeyedLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("util: unlock of unknown key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
	e.m.Unlock()
}
