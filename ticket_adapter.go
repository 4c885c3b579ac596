package lockkit

import "github.com/jcordero/lockkit/ticket"

// ticketLock adapts ticket.Lock to the Lock interface. No per-goroutine
// node is needed, so every Token it hands out is empty.
type ticketLock struct {
	l *ticket.Lock
}

func newTicketLock() Lock {
	return &ticketLock{l: ticket.NewLock()}
}

func (t *ticketLock) Acquire() Token {
	t.l.Lock()
	return Token{}
}

func (t *ticketLock) Release(Token) { t.l.Unlock() }

func (t *ticketLock) TryAcquire() (Token, bool) {
	return Token{}, t.l.TryLock()
}
