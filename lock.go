// Package lockkit is a small library of interchangeable mutual-exclusion
// primitives. A Lock is polymorphic over {Acquire, Release, TryAcquire}
// and comes in four variants (OsMutex, Ticket, Mcs, Clh); a factory picks
// the variant at construction time, and callers hold an opaque Lock and
// never re-examine which one they got.
//
// The four algorithms live in their own importable sub-packages
// (osmutex, ticket, mcs, clh) for callers who want the variant-specific
// API directly (mcs and clh there need an explicit per-goroutine
// node/handle passed to every call); this package wraps each of them
// behind the uniform Lock interface, managing that per-goroutine
// bookkeeping internally with a sync.Pool scoped to the one Lock instance
// and handing the checked-out node back to the caller as an opaque Token.
package lockkit

// Token is the opaque per-acquisition value Acquire and a successful
// TryAcquire hand back and Release consumes. Its shape is unexported and
// its zero value is meaningless outside the Lock that produced it: it
// exists purely to give Mcs and Clh somewhere to keep the queue node this
// particular acquisition is using, since Go exposes no goroutine-local
// storage for the Lock to find that node on its own.
type Token struct {
	node any
}

// Lock is the uniform contract every variant satisfies.
//
// Acquire blocks the caller until it is the exclusive holder, returning a
// Token that must be passed to the matching Release. It must not be
// called by a goroutine that already holds the same Lock (non-reentrant).
//
// Release relinquishes the lock. It must be called with the Token
// returned by the Acquire (or successful TryAcquire) that most recently
// granted this Lock, by the same goroutine, exactly once.
//
// TryAcquire never blocks: it returns a valid Token and true having
// acquired the lock, or a meaningless Token and false having not.
//
// Misuse (release without hold, double release, release from the wrong
// goroutine, releasing with a Token from a different Lock) is undefined
// behavior; none of the four algorithms detect it.
type Lock interface {
	Acquire() Token
	Release(Token)
	TryAcquire() (Token, bool)
}
