// Package clh implements the Craig, Landin & Hagersten (CLH) lock: a
// FIFO queuing lock built on an implicit list threaded through a single
// atomic tail pointer, where each waiter spins on its predecessor's node
// rather than its own.
//
// Unlike mcs.Lock, which hands each participant one persistent node, a CLH
// participant needs two: on release, the just-released node may still be
// under observation by the successor that is spinning on it, so the
// releasing goroutine's next acquisition must publish the *other* node.
// Handle owns that rotating pair and must be reused, one per goroutine,
// across every Lock/Unlock pair on a given Lock — exactly the ownership
// discipline mcs.QNode already requires, just with two nodes instead of
// one.
//
// Example usage:
//
//	lock := clh.NewLock()
//	h := lock.NewHandle()
//
//	h.Lock()
//	// ... critical section ...
//	h.Unlock()
//
//	if h.TryLock() {
//	    // ... critical section ...
//	    h.Unlock()
//	}
package clh

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/jcordero/lockkit/internal/cpupause"
)

// Node is a single link in the implicit CLH queue. locked is true while
// the goroutine that published this node has not yet released. Padded to
// its own cache line: a node is read by exactly one successor while its
// owner is elsewhere, and written once by its owner on release.
type Node struct {
	locked atomic.Bool
	_      cpu.CacheLinePad
}

// Lock is the CLH lock's shared state: the current tail of the implicit
// queue, or nil when the lock has never been acquired.
type Lock struct {
	tail atomic.Pointer[Node]
	_    cpu.CacheLinePad
}

// NewLock creates a new CLH lock, initially free.
func NewLock() *Lock { return new(Lock) }

// Handle is one goroutine's participation state for a Lock: two owned
// nodes (a, b) and two pointers into them (mine, spare) that swap roles on
// every acquire. A Handle must not be used by more than one goroutine at a
// time, and must be reused across repeated Lock/Unlock pairs rather than
// recreated — recreating it on every call would defeat the rotation this
// type exists to provide.
type Handle struct {
	lock *Lock
	a, b Node
	mine *Node
}

// NewHandle returns a new per-goroutine handle bound to lock, with its two
// nodes rotation-ready.
func (l *Lock) NewHandle() *Handle {
	h := &Handle{lock: l}
	h.mine = &h.a
	// spare starts as &h.b implicitly: rotate() always swaps mine with the
	// node mine isn't currently pointing at.
	return h
}

func (h *Handle) spare() *Node {
	if h.mine == &h.a {
		return &h.b
	}
	return &h.a
}

// rotate swaps which owned node is "mine" for this acquisition. It must
// run before every publish of a new node into the queue: the previous
// "mine" node may still be under a successor's gaze until that successor
// observes its locked store go false, so this acquisition must use the
// other one.
func (h *Handle) rotate() { h.mine = h.spare() }

// Lock acquires the lock, blocking until this handle's predecessor
// releases.
func (h *Handle) Lock() {
	h.rotate()
	h.mine.locked.Store(true) // no reader can see this yet
	pred := h.lock.tail.Swap(h.mine)

	if pred == nil {
		return // queue was empty
	}

	// pred's storage belongs to whichever goroutine is using it; it is
	// never freed here, only read until its locked store goes false.
	var w cpupause.Waiter
	for pred.locked.Load() {
		w.Pause()
	}
}

// Unlock releases the lock. This is the entire release path: the
// successor spinning on this handle's "mine" node observes the store and
// becomes free to proceed.
func (h *Handle) Unlock() {
	h.mine.locked.Store(false)
}

// TryLock attempts to acquire the lock without blocking, using the
// "peek, then CAS with the rotated node" form: it inspects the current
// tail and, only if the queue looks empty or its owner has already
// released, attempts to swap in the spare node. On failure it leaves mine
// and spare untouched and inserts nothing into the queue — this
// implementation deliberately avoids the alternative form (CAS a fresh
// node into the tail unconditionally) noted in the design as ordering
// -fragile.
func (h *Handle) TryLock() bool {
	observed := h.lock.tail.Load()
	if observed != nil && observed.locked.Load() {
		return false
	}

	candidate := h.spare()
	candidate.locked.Store(true)

	if !h.lock.tail.CompareAndSwap(observed, candidate) {
		return false
	}

	h.mine = candidate
	return true
}
