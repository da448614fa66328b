// Package state keeps a local copy of a remote collection together with the
// busy flags and last error a UI needs to render it.
package state

import (
	"context"
	"slices"
	"sync"

	"user-post-service/pkg/client"
)

// State is a point-in-time view of a collection.
type State[T any] struct {
	Items    []T
	Loading  bool
	Creating bool
	Updating bool
	Deleting bool
	Error    string // empty when the last action succeeded
}

func (s State[T]) clone() State[T] {
	s.Items = slices.Clone(s.Items)
	if s.Items == nil {
		s.Items = []T{}
	}
	return s
}

// Remote is the API a Collection mirrors.
type Remote[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, data C) (*T, error)
	Update(ctx context.Context, id int64, data U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Collection mirrors a remote collection of T created from C and updated
// from U. The first call on a Collection loads it once from the remote.
// Actions never cancel each other; overlapping ones each set and clear
// their own flag.
type Collection[T, C, U any] struct {
	remote Remote[T, C, U]
	idOf   func(T) int64

	initial sync.Once

	mu    sync.Mutex
	state State[T]

	subMu  sync.Mutex
	subs   map[int]func(State[T])
	nextID int
}

// NewCollection creates an empty Collection. idOf extracts the entity id.
func NewCollection[T, C, U any](remote Remote[T, C, U], idOf func(T) int64) *Collection[T, C, U] {
	return &Collection[T, C, U]{
		remote: remote,
		idOf:   idOf,
		state:  State[T]{Items: []T{}},
		subs:   make(map[int]func(State[T])),
	}
}

// OnChange registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (c *Collection[T, C, U]) OnChange(fn func(State[T])) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (c *Collection[T, C, U]) Snapshot(ctx context.Context) State[T] {
	c.ensureLoaded(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Refresh replaces the items with the remote list.
func (c *Collection[T, C, U]) Refresh(ctx context.Context) {
	c.load(ctx, c.remote.List)
}

// Create adds an entity remotely and appends it locally.
func (c *Collection[T, C, U]) Create(ctx context.Context, data C) (T, bool) {
	c.ensureLoaded(ctx)
	c.begin(func(s *State[T]) { s.Creating = true })

	created, err := c.remote.Create(ctx, data)
	if err != nil {
		c.fail(err, func(s *State[T]) { s.Creating = false })
		var zero T
		return zero, false
	}

	c.succeed(func(s *State[T]) {
		s.Creating = false
		s.Items = append(s.Items, *created)
	})
	return *created, true
}

// Update changes an entity remotely and replaces the local copy with the
// same id.
func (c *Collection[T, C, U]) Update(ctx context.Context, id int64, data U) (T, bool) {
	c.ensureLoaded(ctx)
	c.begin(func(s *State[T]) { s.Updating = true })

	updated, err := c.remote.Update(ctx, id, data)
	if err != nil {
		c.fail(err, func(s *State[T]) { s.Updating = false })
		var zero T
		return zero, false
	}

	c.succeed(func(s *State[T]) {
		s.Updating = false
		for i := range s.Items {
			if c.idOf(s.Items[i]) == id {
				s.Items[i] = *updated
			}
		}
	})
	return *updated, true
}

// Delete removes an entity remotely and locally.
func (c *Collection[T, C, U]) Delete(ctx context.Context, id int64) bool {
	c.ensureLoaded(ctx)
	c.begin(func(s *State[T]) { s.Deleting = true })

	if err := c.remote.Delete(ctx, id); err != nil {
		c.fail(err, func(s *State[T]) { s.Deleting = false })
		return false
	}

	c.succeed(func(s *State[T]) {
		s.Deleting = false
		s.Items = slices.DeleteFunc(s.Items, func(v T) bool { return c.idOf(v) == id })
	})
	return true
}

// ClearError forgets the last error.
func (c *Collection[T, C, U]) ClearError(ctx context.Context) {
	c.ensureLoaded(ctx)
	c.succeed(func(*State[T]) {})
}

// load runs fetch as a Loading action. The first load of the collection
// also satisfies the initial load.
func (c *Collection[T, C, U]) load(ctx context.Context, fetch func(context.Context) ([]T, error)) {
	ran := false
	c.initial.Do(func() {
		ran = true
		c.fetch(ctx, fetch)
	})
	if !ran {
		c.fetch(ctx, fetch)
	}
}

func (c *Collection[T, C, U]) ensureLoaded(ctx context.Context) {
	c.initial.Do(func() { c.fetch(ctx, c.remote.List) })
}

func (c *Collection[T, C, U]) fetch(ctx context.Context, fetch func(context.Context) ([]T, error)) {
	c.begin(func(s *State[T]) { s.Loading = true })

	items, err := fetch(ctx)
	if err != nil {
		c.fail(err, func(s *State[T]) { s.Loading = false })
		return
	}

	c.succeed(func(s *State[T]) {
		s.Loading = false
		s.Items = slices.Clone(items)
		if s.Items == nil {
			s.Items = []T{}
		}
	})
}

// begin sets a busy flag and clears the error.
func (c *Collection[T, C, U]) begin(mark func(*State[T])) {
	c.apply(func(s *State[T]) {
		mark(s)
		s.Error = ""
	})
}

func (c *Collection[T, C, U]) succeed(update func(*State[T])) {
	c.apply(func(s *State[T]) {
		update(s)
		s.Error = ""
	})
}

func (c *Collection[T, C, U]) fail(err error, unmark func(*State[T])) {
	msg := client.AsAPIError(err).Message
	c.apply(func(s *State[T]) {
		unmark(s)
		s.Error = msg
	})
}

func (c *Collection[T, C, U]) apply(update func(*State[T])) {
	c.mu.Lock()
	update(&c.state)
	snap := c.state.clone()
	c.mu.Unlock()

	c.subMu.Lock()
	subs := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
