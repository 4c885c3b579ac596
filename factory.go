package lockkit

import "fmt"

// New constructs a fresh Lock of the given variant. It is the only
// sanctioned way to build one; every variant's atomic state (counters,
// tail pointers) starts zeroed/nil, and the OS-mutex variant's platform
// mutex is constructed here too.
//
// New fails with ErrUnknownVariant for a Variant outside the known set.
func New(variant Variant) (Lock, error) {
	switch variant {
	case OsMutex:
		return newOsMutexLock()
	case Ticket:
		return newTicketLock(), nil
	case Mcs:
		return newMcsLock(), nil
	case Clh:
		return newClhLock(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}
}
