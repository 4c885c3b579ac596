// Package ticket provides a fair mutual exclusion lock implemented as two
// monotonic counters. The Lock type guarantees FIFO ordering of lock
// acquisition: goroutines draw a ticket and are served in the exact order
// they drew it, using a CPU-pause / adaptive-backoff spin while waiting
// their turn.
//
// Example usage:
//
//	lock := ticket.NewLock()
//	lock.Lock()
//	// ... critical section ...
//	lock.Unlock()
//
//	if lock.TryLock() {
//	    // ... critical section ...
//	    lock.Unlock()
//	}
package ticket

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/jcordero/lockkit/internal/cpupause"
)

// Lock implements a FIFO ticket lock using two counters:
//   - nextTicket: the next ticket number to be dispensed to an acquirer.
//   - nowServing: the ticket number currently permitted to hold the lock.
//
// The lock is free when nowServing == nextTicket. The two counters live on
// separate cache lines: nextTicket is written by every acquirer
// (fetch-and-add), nowServing is written only by the current holder (on
// release); packing them together would make every acquirer's fetch-add
// bounce the cache line the holder is about to write.
type Lock struct {
	nowServing atomic.Uint32
	_          cpu.CacheLinePad
	nextTicket atomic.Uint32
	_          cpu.CacheLinePad
}

// NewLock creates a new ticket lock, initially free.
func NewLock() *Lock { return &Lock{} }

// Lock acquires the lock, blocking until this goroutine's ticket is being
// served.
//
// The ticket draw is a relaxed fetch-and-add: nextTicket only needs to hand
// out unique, monotonically increasing numbers, and carries no other
// goroutine's writes that a caller needs to observe. The happens-before
// edge between consecutive holders comes entirely from the acquire-load
// here synchronizing with the release-store in Unlock.
func (t *Lock) Lock() {
	myTicket := t.nextTicket.Add(1) - 1

	if t.nowServing.Load() == myTicket {
		return // uncontended fast path, no spin loop entered
	}

	var w cpupause.Waiter
	for t.nowServing.Load() != myTicket {
		w.Pause()
	}
}

// Unlock releases the lock, admitting the next ticket holder.
//
// sync/atomic operations are sequentially consistent, strictly stronger
// than the release order this store conceptually needs: every write made
// during this holder's critical section becomes visible to the next
// holder's acquire-load in Lock once it observes the incremented value.
func (t *Lock) Unlock() {
	t.nowServing.Store(t.nowServing.Load() + 1)
}

// TryLock attempts to acquire the lock without blocking. It succeeds only
// when this goroutine's CAS lands on the ticket currently being served, so
// a successful TryLock always means immediate ownership: no ticket is ever
// drawn and left unclaimed, because nextTicket is mutated only on success.
func (t *Lock) TryLock() bool {
	c := t.nowServing.Load()
	return t.nextTicket.CompareAndSwap(c, c+1)
}
