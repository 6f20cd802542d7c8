// Package store holds the per-entity remote collection state: the cached
// list, paging metadata, loading/error flags and a staleness marker. The
// client never owns the data: the server's response is authoritative and
// the cache only reflects it.
package store

import (
	"sync"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

// Identifiable is satisfied by every wire DTO; records are matched by
// identifier when the cache is patched in place.
type Identifiable interface {
	Identifier() string
}

// Collection caches one remote list. By default overlapping fetches
// settle last-resolved-wins: if two fetches with different filters
// resolve out of order, the cache transiently shows results for the
// wrong filter until the next fetch. Known limitation; enable fencing via
// NewFenced to ignore superseded responses instead.
type Collection[T Identifiable] struct {
	mu sync.Mutex

	items      []T
	pagination common.Pagination
	loading    bool
	err        error
	stale      bool

	fenced    bool
	lastToken uint64
}

func New[T Identifiable]() *Collection[T] {
	return &Collection[T]{}
}

// NewFenced returns a collection that drops any fetch result whose token
// is not the latest issued by BeginFetch.
func NewFenced[T Identifiable]() *Collection[T] {
	return &Collection[T]{fenced: true}
}

// BeginFetch marks a fetch in flight and clears the previous error. The
// returned token must be handed back to FetchSucceeded/FetchFailed.
func (c *Collection[T]) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.err = nil
	c.lastToken++
	return c.lastToken
}

// FetchSucceeded replaces items and pagination wholesale and clears the
// stale flag. Under fencing, results for superseded tokens are dropped.
func (c *Collection[T]) FetchSucceeded(token uint64, items []T, pagination common.Pagination) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fenced && token != c.lastToken {
		return
	}
	c.items = items
	c.pagination = pagination
	c.loading = false
	c.err = nil
	c.stale = false
}

// FetchFailed records the error and stops loading. Items are left
// untouched: stale-but-displayed beats an empty screen.
func (c *Collection[T]) FetchFailed(token uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fenced && token != c.lastToken {
		return
	}
	c.loading = false
	c.err = err
}

// ApplyCreate appends the record and marks the cache stale; paginated
// counts and server-computed fields need a refetch to be trusted.
func (c *Collection[T]) ApplyCreate(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, record)
	c.stale = true
}

// ApplyUpdate replaces the matching record in place, preserving order.
func (c *Collection[T]) ApplyUpdate(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Identifier() == record.Identifier() {
			c.items[i] = record
			break
		}
	}
	c.stale = true
}

// ApplyDelete removes exactly the record with the given identifier.
func (c *Collection[T]) ApplyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Identifier() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.stale = true
}

// Items returns a copy of the cached list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Pagination() common.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Stale reports whether a mutation has touched the cache since the last
// successful fetch; consumers use it as the refetch signal.
func (c *Collection[T]) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
