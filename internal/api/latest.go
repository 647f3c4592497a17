package api

import "sync"

// Latest enforces last-write-wins over superseding fetches for one view.
// Each fetch takes a ticket before it starts; only the result of the newest
// committed ticket sticks. A stale response arriving after a newer one has
// committed is discarded, so a slow page-1 fetch can never overwrite the
// page-2 result the user asked for afterwards.
type Latest[T any] struct {
	mu        sync.Mutex
	issued    uint64
	committed uint64
	value     T
	has       bool
}

// Begin reserves the next ticket. Call it synchronously when the fetch is
// initiated, not when it completes, so ticket order matches request order.
func (l *Latest[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// Commit stores v if ticket is newer than anything committed so far and
// reports whether the value was kept.
func (l *Latest[T]) Commit(ticket uint64, v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ticket <= l.committed {
		return false
	}
	l.committed = ticket
	l.value = v
	l.has = true
	return true
}

// Value returns the newest committed value, if any.
func (l *Latest[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.has
}
