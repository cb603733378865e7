package collab

import (
	"context"
	"sync"

	"github.com/dkimathi/darasa/core"
)

// Collection holds the in-memory snapshot of one collection: an ordered
// slice replaced wholesale on every load. The poller goroutine and the
// caller both touch it, hence the lock; within one session there is no
// other writer.
type Collection[T any] struct {
	name  string
	store Store[T]
	log   core.Logger

	mu    sync.RWMutex
	items []T
}

func newCollection[T any](name string, store Store[T], log core.Logger) *Collection[T] {
	return &Collection[T]{name: name, store: store, log: log}
}

// Load replaces the snapshot with the backend's current contents. A failed
// read keeps the previous snapshot and logs; it is never surfaced to the
// caller. The next poll is the retry.
func (c *Collection[T]) Load(ctx context.Context) {
	items, err := c.store.List(ctx)
	if err != nil {
		c.log.Warn("loading "+c.name, err)
		return
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Snapshot returns a copy of the current snapshot.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// insert adds an item at the position matching the collection's render
// order: newest-first collections prepend, the message log appends.
func (c *Collection[T]) insert(item T, newestFirst bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if newestFirst {
		c.items = append([]T{item}, c.items...)
		return
	}
	c.items = append(c.items, item)
}

// remove filters out items matching the predicate.
func (c *Collection[T]) remove(match func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:len(c.items)]
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// find returns the first item matching the predicate.
func (c *Collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
