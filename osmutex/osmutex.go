// Package osmutex is a thin pass-through to the platform's blocking mutex.
//
// Go's sync.Mutex is itself a hybrid spin/futex lock managed by the
// runtime, the closest stand-in this language has to "the operating
// system's native mutex" — it delegates to the scheduler and, on
// contention, to the OS the same way a pthread_mutex_t would. Lock exists
// as a baseline variant for workloads where yielding the CPU to the
// scheduler beats spinning, and provides no fairness guarantee beyond
// whatever sync.Mutex gives (none, by design: it favors throughput and
// permits barging).
//
// Example usage:
//
//	lock := osmutex.NewLock()
//	lock.Lock()
//	// ... critical section ...
//	lock.Unlock()
package osmutex

import "sync"

// Lock wraps sync.Mutex behind the same Lock/Unlock/TryLock shape the
// other variants in this repo expose.
type Lock struct {
	mu sync.Mutex
}

// NewLock creates a new OS-mutex-backed lock. The error return exists only
// to keep the constructor's shape uniform with the platform-mutex variant
// described in the wider design; sync.Mutex has no construction failure
// mode, so it is always nil.
func NewLock() (*Lock, error) {
	return &Lock{}, nil
}

// Lock blocks the caller until it is the exclusive holder.
func (l *Lock) Lock() { l.mu.Lock() }

// Unlock relinquishes the lock. Must be called by the goroutine that most
// recently acquired it; calling it otherwise is undefined behavior,
// exactly as for sync.Mutex.
func (l *Lock) Unlock() { l.mu.Unlock() }

// TryLock attempts to acquire the lock without blocking.
func (l *Lock) TryLock() bool { return l.mu.TryLock() }
