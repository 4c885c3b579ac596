package lockkit

import "strconv"

// Variant names one of the four interchangeable lock algorithms this
// library implements. It mirrors original_source's lock_type_t enum
// (LOCK_TYPE_PTHREAD_MUTEX, _TICKET, _MCS, _CLH) one-for-one.
type Variant int

const (
	// OsMutex wraps the platform's blocking mutex (sync.Mutex in Go).
	// Provides no fairness guarantee beyond whatever the runtime gives.
	OsMutex Variant = iota
	// Ticket is a FIFO lock built from two monotonic counters.
	Ticket
	// Mcs is a FIFO queuing lock where each waiter spins on its own node.
	Mcs
	// Clh is a FIFO queuing lock where each waiter spins on its
	// predecessor's node.
	Clh
)

// String returns the variant's name, or "Variant(n)" for an unrecognized
// value.
func (v Variant) String() string {
	switch v {
	case OsMutex:
		return "OsMutex"
	case Ticket:
		return "Ticket"
	case Mcs:
		return "Mcs"
	case Clh:
		return "Clh"
	default:
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
}
