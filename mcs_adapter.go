package lockkit

import (
	"sync"

	"github.com/jcordero/lockkit/mcs"
)

// mcsLock adapts mcs.Lock to the Lock interface, using a sync.Pool of
// mcs.QNode scoped to this one Lock instance to stand in for the
// per-(goroutine, lock) node storage the underlying algorithm requires.
//
// A node is checked out in Acquire and is safe to return to the pool only
// once no other goroutine can still be reading it — for MCS that is after
// Unlock has either swung the tail back to nil or handed off to a
// successor, i.e. after mcs.Lock.Unlock returns.
type mcsLock struct {
	l    *mcs.Lock
	pool sync.Pool
}

func newMcsLock() Lock {
	m := &mcsLock{l: mcs.NewLock()}
	m.pool.New = func() any { return new(mcs.QNode) }
	return m
}

func (m *mcsLock) checkout() *mcs.QNode {
	return m.pool.Get().(*mcs.QNode)
}

func (m *mcsLock) Acquire() Token {
	node := m.checkout()
	m.l.Lock(node)
	return Token{node: node}
}

func (m *mcsLock) Release(t Token) {
	node := t.node.(*mcs.QNode)
	m.l.Unlock(node)
	m.pool.Put(node)
}

func (m *mcsLock) TryAcquire() (Token, bool) {
	node := m.checkout()
	if m.l.TryLock(node) {
		return Token{node: node}, true
	}
	m.pool.Put(node)
	return Token{}, false
}
