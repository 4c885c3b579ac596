package alock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayLockMutualExclusion(t *testing.T) {
	const numGoroutines = 16
	const iterations = 2000
	share := NewShare(numGoroutines)
	counter := 0
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			lock := share.Handle()
			for range iterations {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*iterations, counter)
}

func TestArrayLockTryLockTruthfulness(t *testing.T) {
	share := NewShare(4)
	a := share.Handle()
	b := share.Handle()

	assert.True(t, a.TryLock())
	assert.False(t, b.TryLock(), "TryLock must fail while the slot a holds isn't ready")

	a.Unlock()
	assert.True(t, b.TryLock())
	b.Unlock()
}

func TestNewArrayLockSingleParticipant(t *testing.T) {
	lock := NewArrayLock(1)
	for i := 0; i < 100; i++ {
		lock.Lock()
		lock.Unlock()
	}
}
