// Package alock implements an array-based queuing lock: a fixed-size ring
// of per-participant flags, one per goroutine known to contend for the
// lock in advance. It is not one of the four variants the root lockkit
// package dispatches to (spec.md's Variant enum is closed over
// OsMutex/Ticket/Mcs/Clh), but it shares their exact node discipline — a
// shared core (Share) plus one per-goroutine handle (ArrayLock) wrapping
// it, the same split the root package's pooled Mcs/Clh adapters generalize
// to an unbounded number of goroutines.
//
// The array-based lock provides:
//   - Fair, FIFO ordering of lock acquisition
//   - Bounded memory usage fixed at construction time
//   - Each goroutine spins on its own dedicated, cache-line-isolated flag
//
// Example usage:
//
//	share := alock.NewShare(4) // support up to 4 goroutines
//	lock := share.Handle()     // one handle per goroutine
//
//	lock.Lock()
//	// ... critical section ...
//	lock.Unlock()
//
//	if lock.TryLock() {
//	    // ... critical section ...
//	    lock.Unlock()
//	}
//
// The participant count must be known in advance and match the maximum
// number of goroutines that will contend for the lock; with more
// goroutines than that, two of them can draw the same slot and are then
// admitted to the critical section together.
package alock

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/jcordero/lockkit/internal/cpupause"
)

// flag is one participant's turn indicator, padded to its own cache line
// so that one goroutine spinning on its flag never bounces the line a
// neighboring goroutine's flag lives on.
type flag struct {
	ready atomic.Uint32
	_     cpu.CacheLinePad
}

// Share is the lock's state, shared by every goroutine that holds a
// handle onto it.
type Share struct {
	flags []flag
	tail  atomic.Uint32
	size  uint32
}

// ArrayLock is one goroutine's handle onto a Share: the slot it currently
// occupies. A single ArrayLock must not be used concurrently by more than
// one goroutine, mirroring the mcs.QNode / clh.Handle ownership rule.
type ArrayLock struct {
	share   *Share
	myIndex uint32
}

// NewShare creates lock state sized for numGoroutines participants.
func NewShare(numGoroutines uint32) *Share {
	s := &Share{
		size:  numGoroutines,
		flags: make([]flag, numGoroutines),
	}
	s.flags[0].ready.Store(1) // first slot starts runnable, lock starts free
	return s
}

// Handle returns a new per-goroutine lock handle bound to this Share.
func (s *Share) Handle() *ArrayLock { return &ArrayLock{share: s} }

// NewArrayLock is a convenience constructor equivalent to
// NewShare(numGoroutines).Handle(), for the common case of one goroutine
// owning the only handle it needs.
func NewArrayLock(numGoroutines uint32) *ArrayLock {
	return NewShare(numGoroutines).Handle()
}

// Lock acquires the lock for this handle's goroutine, blocking until its
// slot becomes ready.
func (al *ArrayLock) Lock() {
	s := al.share
	slot := (s.tail.Add(1) - 1) % s.size
	al.myIndex = slot

	var w cpupause.Waiter
	for s.flags[slot].ready.Load() == 0 {
		w.Pause()
	}
}

// Unlock releases the lock, admitting the next slot in the ring.
func (al *ArrayLock) Unlock() {
	s := al.share
	slot := al.myIndex

	s.flags[slot].ready.Store(0)
	next := (slot + 1) % s.size
	s.flags[next].ready.Store(1)
}

// TryLock attempts to acquire the lock without blocking.
func (al *ArrayLock) TryLock() bool {
	s := al.share
	tail := s.tail.Load()
	slot := tail % s.size
	if s.flags[slot].ready.Load() == 1 {
		if s.tail.CompareAndSwap(tail, tail+1) {
			al.myIndex = slot
			return true
		}
	}
	return false
}
