package lockkit

import "errors"

// ErrUnknownVariant is returned by New when asked for a Variant outside
// the known set.
var ErrUnknownVariant = errors.New("lockkit: unknown lock variant")

// ErrPlatformMutex would wrap a failure from the platform's mutex
// construction or destruction call. sync.Mutex has no such failure mode,
// so OsMutex's constructor never actually returns it; it is kept as a
// named sentinel so callers that switch on error identity across variants
// have something stable to compare against.
var ErrPlatformMutex = errors.New("lockkit: platform mutex error")
