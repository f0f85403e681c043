package state

import "sync"

// RecordSnapshot is a point-in-time copy of a single-record container.
type RecordSnapshot[T any] struct {
	Item      *T
	IsLoading bool
	IsError   bool
	Message   string
}

// Record mirrors a single backend record (the tenant's active lease, the
// dashboard stats snapshot). Same sequence fencing as Collection; a nil
// item is a valid fulfilled state meaning "no record exists".
type Record[T any] struct {
	mu     sync.RWMutex
	seq    uint64
	latest uint64

	item      *T
	isLoading bool
	isError   bool
	message   string

	subs []func(RecordSnapshot[T])
}

// NewRecord creates an empty record container.
func NewRecord[T any]() *Record[T] {
	return &Record[T]{}
}

// Begin is the pending phase; see Collection.Begin.
func (r *Record[T]) Begin() uint64 {
	r.mu.Lock()
	r.seq++
	r.latest = r.seq
	r.isLoading = true
	seq := r.seq
	r.mu.Unlock()
	r.notify()
	return seq
}

// Set fulfills a fetch with the server-supplied record, or nil when the
// backend reported none.
func (r *Record[T]) Set(seq uint64, item *T) bool {
	r.mu.Lock()
	if seq != r.latest {
		r.mu.Unlock()
		return false
	}
	r.item = item
	r.isLoading = false
	r.isError = false
	r.message = ""
	r.mu.Unlock()
	r.notify()
	return true
}

// Reject records a failure; see Collection.Reject.
func (r *Record[T]) Reject(seq uint64, message string) bool {
	r.mu.Lock()
	if seq != r.latest {
		r.mu.Unlock()
		return false
	}
	r.isLoading = false
	r.isError = true
	r.message = message
	r.mu.Unlock()
	r.notify()
	return true
}

// Reset restores the initial state and invalidates outstanding requests.
func (r *Record[T]) Reset() {
	r.mu.Lock()
	r.seq++
	r.latest = r.seq
	r.item = nil
	r.isLoading = false
	r.isError = false
	r.message = ""
	r.mu.Unlock()
	r.notify()
}

// Snapshot returns a copy of the current state. The item pointer is
// shared; records are treated as immutable once stored.
func (r *Record[T]) Snapshot() RecordSnapshot[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RecordSnapshot[T]{
		Item:      r.item,
		IsLoading: r.isLoading,
		IsError:   r.isError,
		Message:   r.message,
	}
}

// Subscribe registers an observer called after every applied transition.
func (r *Record[T]) Subscribe(fn func(RecordSnapshot[T])) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

func (r *Record[T]) notify() {
	r.mu.RLock()
	subs := make([]func(RecordSnapshot[T]), len(r.subs))
	copy(subs, r.subs)
	r.mu.RUnlock()
	if len(subs) == 0 {
		return
	}
	snap := r.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}
