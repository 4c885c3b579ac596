package lockkit

import (
	"fmt"

	"github.com/jcordero/lockkit/osmutex"
)

// osMutexLock adapts osmutex.Lock to the Lock interface. It needs no
// per-goroutine node, so every Token it hands out is empty.
type osMutexLock struct {
	l *osmutex.Lock
}

func newOsMutexLock() (Lock, error) {
	l, err := osmutex.NewLock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatformMutex, err)
	}
	return &osMutexLock{l: l}, nil
}

func (o *osMutexLock) Acquire() Token {
	o.l.Lock()
	return Token{}
}

func (o *osMutexLock) Release(Token) { o.l.Unlock() }

func (o *osMutexLock) TryAcquire() (Token, bool) {
	return Token{}, o.l.TryLock()
}
