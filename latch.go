package precisetime

import "sync/atomic"

// latch holds a value that is computed once and then published
// immutably. Readers after publication pay a single atomic load.
type latch[T any] struct {
	p atomic.Pointer[T]
}

// Get returns the published value, computing it with init on first
// use. Callers racing on first use may each run init, but only one
// result is published and all of them return that same pointer.
// init must be idempotent.
func (l *latch[T]) Get(init func() T) *T {
	if v := l.p.Load(); v != nil {
		return v
	}
	v := init()
	if l.p.CompareAndSwap(nil, &v) {
		return &v
	}
	return l.p.Load()
}
