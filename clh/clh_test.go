package clh

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockConcurrentAccess(t *testing.T) {
	lock := NewLock()
	const numGoroutines = 100
	const iterations = 500
	counter := 0
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			h := lock.NewHandle()
			for range iterations {
				h.Lock()
				counter++
				h.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*iterations, counter)
}

func TestHandleNodesDistinct(t *testing.T) {
	lock := NewLock()
	h := lock.NewHandle()

	for i := 0; i < 10_000; i++ {
		h.Lock()
		h.Unlock()
		spare := h.spare()
		assert.NotSame(t, h.mine, spare, "mine and spare must never point at the same node")
	}
}

func TestAlternatingAcquireRelease(t *testing.T) {
	lock := NewLock()
	var wg sync.WaitGroup
	const rounds = 10_000

	wg.Add(2)
	for g := 0; g < 2; g++ {
		go func() {
			defer wg.Done()
			h := lock.NewHandle()
			for i := 0; i < rounds; i++ {
				h.Lock()
				h.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestTryLockTruthfulness(t *testing.T) {
	lock := NewLock()
	a := lock.NewHandle()
	b := lock.NewHandle()

	assert.True(t, a.TryLock(), "TryLock should succeed on a free lock")
	assert.False(t, b.TryLock(), "TryLock should fail while the lock is held")

	a.Unlock()
	assert.True(t, b.TryLock(), "TryLock should succeed once the lock is released")
	b.Unlock()
}

func TestFIFOOrdering(t *testing.T) {
	lock := NewLock()
	const numGoroutines = 32

	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	first := lock.NewHandle()
	first.Lock() // hold the lock so every goroutine below queues up behind it
	prevTail := lock.tail.Load()

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		h := lock.NewHandle()
		go func(id int) {
			defer wg.Done()
			h.Lock()
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			h.Unlock()
		}(i)

		// Only the atomic tail pointer is read here, never a Handle
		// field, so this cannot race with the goroutine's own rotate().
		var w int
		var cur *Node
		for {
			cur = lock.tail.Load()
			if cur != prevTail {
				break
			}
			w++
			if w > 1_000_000 {
				t.Fatalf("goroutine %d never enqueued", i)
			}
		}
		prevTail = cur
	}

	first.Unlock()
	wg.Wait()

	expected := make([]int, numGoroutines)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, order, "CLH lock must grant the lock in enqueue order")
}

func BenchmarkLockUncontended(b *testing.B) {
	lock := NewLock()
	h := lock.NewHandle()
	for i := 0; i < b.N; i++ {
		h.Lock()
		h.Unlock()
	}
}

func BenchmarkLockContended(b *testing.B) {
	lock := NewLock()
	shared := 0
	b.RunParallel(func(pb *testing.PB) {
		h := lock.NewHandle()
		for pb.Next() {
			h.Lock()
			shared++
			h.Unlock()
		}
	})
}
