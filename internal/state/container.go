// Package state holds the per-resource client-side containers: the
// last-fetched data plus loading/error flags, mutated through the
// pending/fulfilled/rejected contract with stale-response fencing.
package state

import "sync"

// Snapshot is a point-in-time copy of a collection container.
type Snapshot[T any] struct {
	Items      []T
	IsLoading  bool
	IsError    bool
	Message    string
	Page       int
	TotalPages int
}

// Collection mirrors one backend resource list. Every operation begins
// with Begin, which issues a monotonic sequence number; a response is
// applied only when its sequence is still the latest issued, so the
// observed state always reflects the most recently initiated request.
// Single writer per container; readers take snapshots.
type Collection[T any] struct {
	mu     sync.RWMutex
	seq    uint64
	latest uint64

	items      []T
	isLoading  bool
	isError    bool
	message    string
	page       int
	totalPages int

	id   func(T) string
	subs []func(Snapshot[T])
}

// NewCollection creates an empty collection. id extracts a record's
// identifier, used by Update and Remove to splice by id.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Begin is the pending phase: sets the loading flag, leaves prior data
// untouched, and returns the sequence the eventual response must carry.
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	c.seq++
	c.latest = c.seq
	c.isLoading = true
	seq := c.seq
	c.mu.Unlock()
	c.notify()
	return seq
}

// Replace fulfills a list fetch: the collection becomes exactly the
// payload. Returns false when the response is stale and was discarded.
func (c *Collection[T]) Replace(seq uint64, items []T) bool {
	return c.fulfill(seq, func() { c.items = items })
}

// ReplacePage fulfills a paginated list fetch.
func (c *Collection[T]) ReplacePage(seq uint64, items []T, page, totalPages int) bool {
	return c.fulfill(seq, func() {
		c.items = items
		c.page = page
		c.totalPages = totalPages
	})
}

// Prepend fulfills a create by putting the server-supplied record first.
func (c *Collection[T]) Prepend(seq uint64, item T) bool {
	return c.fulfill(seq, func() { c.items = append([]T{item}, c.items...) })
}

// Append fulfills a create by putting the server-supplied record last.
func (c *Collection[T]) Append(seq uint64, item T) bool {
	return c.fulfill(seq, func() { c.items = append(c.items, item) })
}

// Update fulfills an update by replacing the matching record in place.
// Collection length is unchanged; an unmatched id is a no-op splice.
func (c *Collection[T]) Update(seq uint64, item T) bool {
	return c.fulfill(seq, func() {
		id := c.id(item)
		for i := range c.items {
			if c.id(c.items[i]) == id {
				c.items[i] = item
				return
			}
		}
	})
}

// Remove fulfills a delete by splicing out the record with the given id.
func (c *Collection[T]) Remove(seq uint64, id string) bool {
	return c.fulfill(seq, func() {
		kept := c.items[:0]
		for _, item := range c.items {
			if c.id(item) != id {
				kept = append(kept, item)
			}
		}
		c.items = kept
	})
}

// Reject records a failure: loading cleared, error flag set, message
// stored. Stale rejections are discarded like stale fulfillments.
func (c *Collection[T]) Reject(seq uint64, message string) bool {
	c.mu.Lock()
	if seq != c.latest {
		c.mu.Unlock()
		return false
	}
	c.isLoading = false
	c.isError = true
	c.message = message
	c.mu.Unlock()
	c.notify()
	return true
}

// Reset restores the documented initial state: empty, not loading, no
// error. Outstanding requests are invalidated; their responses will be
// discarded as stale.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	c.seq++
	c.latest = c.seq
	c.items = nil
	c.isLoading = false
	c.isError = false
	c.message = ""
	c.page = 0
	c.totalPages = 0
	c.mu.Unlock()
	c.notify()
}

// Snapshot returns a copy of the current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items:      items,
		IsLoading:  c.isLoading,
		IsError:    c.isError,
		Message:    c.message,
		Page:       c.page,
		TotalPages: c.totalPages,
	}
}

// Subscribe registers an observer called after every applied transition.
func (c *Collection[T]) Subscribe(fn func(Snapshot[T])) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

func (c *Collection[T]) fulfill(seq uint64, apply func()) bool {
	c.mu.Lock()
	if seq != c.latest {
		c.mu.Unlock()
		return false
	}
	apply()
	c.isLoading = false
	c.isError = false
	c.message = ""
	c.mu.Unlock()
	c.notify()
	return true
}

func (c *Collection[T]) notify() {
	c.mu.RLock()
	subs := make([]func(Snapshot[T]), len(c.subs))
	copy(subs, c.subs)
	c.mu.RUnlock()
	if len(subs) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}
