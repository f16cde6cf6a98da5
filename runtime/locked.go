package runtime

import "sync"

// LockedRuntime wraps a Runtime with a mutex for hosts that call into the
// interpreter from more than one goroutine. The default
// single-threaded-cooperative model never needs this; it exists only for
// multi-goroutine hosts that can't funnel every call onto one thread.
type LockedRuntime struct {
	mu sync.Mutex
	rt *Runtime
}

// NewLocked wraps rt for concurrent use.
func NewLocked(rt *Runtime) *LockedRuntime {
	return &LockedRuntime{rt: rt}
}

// With runs fn with the underlying Runtime locked, for callers that need to
// perform several related operations atomically (e.g. a handler issuing
// multiple list/timer operations in one step).
func (l *LockedRuntime) With(fn func(rt *Runtime)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.rt)
}
