package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLockSerializesSameKey(t *testing.T) {
	k := NewKeyedLock()

	count := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("user-1")
			count++
			k.Unlock("user-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, count)
}

func TestKeyedLockIndependentKeys(t *testing.T) {
	k := NewKeyedLock()

	k.Lock("a")
	done := make(chan struct{})
	go func() {
		k.Lock("b")
		k.Unlock("b")
		close(done)
	}()
	<-done
	k.Unlock("a")
}

func TestKeyedLockReleasesEntries(t *testing.T) {
	k := NewKeyedLock()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%10))
			k.Lock(key)
			k.Unlock(key)
		}(i)
	}
	wg.Wait()

	k.mu.Lock()
	remaining := len(k.locks)
	k.mu.Unlock()
	assert.Zero(t, remaining, "entries must be freed once no holder or waiter remains")
}

func TestKeyedLockUnknownKeyPanics(t *testing.T) {
	k := NewKeyedLock()
	require.Panics(t, func() { k.Unlock("never-locked") })
}
