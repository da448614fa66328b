// Package memory holds the in-process entity stores. Nothing here survives a
// restart.
package memory

import (
	"slices"
	"sync"
)

// Collection is an id-keyed set of entities that remembers insertion order
// and hands out ids 1, 2, 3, ... that are never reused.
type Collection[T any] struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]T
	setID  func(*T, int64)
}

// NewCollection creates an empty collection. setID writes the assigned id
// into a new entity.
func NewCollection[T any](setID func(*T, int64)) *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		items:  make(map[int64]T),
		setID:  setID,
	}
}

// Insert assigns the next id to v, stores it and returns the stored value.
func (c *Collection[T]) Insert(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.setID(&v, id)

	c.items[id] = v
	c.order = append(c.order, id)
	return v
}

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	return c.Filter(func(T) bool { return true })
}

// Filter returns the entities matching keep, in insertion order.
// The result is never nil.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if v := c.items[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// Modify replaces the entity with id by fn(current) and returns the result.
// fn runs under the write lock.
func (c *Collection[T]) Modify(id int64, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		return v, false
	}

	v = fn(v)
	c.setID(&v, id)
	c.items[id] = v
	return v, true
}

// Remove deletes the entity with id and reports whether it existed.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}

	delete(c.items, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
