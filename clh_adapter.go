package lockkit

import (
	"sync"

	"github.com/jcordero/lockkit/clh"
)

// clhLock adapts clh.Lock to the Lock interface with a sync.Pool of
// clh.Handle scoped to this one Lock instance.
//
// A pooled Handle owns its two rotating nodes for its entire lifetime, so
// handing the same Handle to a different goroutine on a later Acquire is
// safe: the successor of whichever acquisition just released it is only
// ever watching the node that acquisition actually published, and the
// next Lock() call on this Handle always rotates onto the other one
// before publishing anything new.
type clhLock struct {
	l    *clh.Lock
	pool sync.Pool
}

func newClhLock() Lock {
	c := &clhLock{l: clh.NewLock()}
	c.pool.New = func() any { return c.l.NewHandle() }
	return c
}

func (c *clhLock) checkout() *clh.Handle {
	return c.pool.Get().(*clh.Handle)
}

func (c *clhLock) Acquire() Token {
	h := c.checkout()
	h.Lock()
	return Token{node: h}
}

func (c *clhLock) Release(t Token) {
	h := t.node.(*clh.Handle)
	h.Unlock()
	c.pool.Put(h)
}

func (c *clhLock) TryAcquire() (Token, bool) {
	h := c.checkout()
	if h.TryLock() {
		return Token{node: h}, true
	}
	c.pool.Put(h)
	return Token{}, false
}
