package listview

import (
	"context"
	"sync"
)

// State is the lifecycle state of a list.
type State string

// Lifecycle states. Viewing, editing and mutating are overlays on Loaded and
// are tracked by the per-entity controllers, not here.
const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateLoaded    State = "loaded"
	StateLoadError State = "load_error"
)

// Fetcher loads the authoritative collection from the remote API.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Controller owns one in-memory list replica and its lifecycle. Every
// mutation of the collection goes through the controller's mutex, so two
// operation handlers can never interleave a patch. Loads carry a sequence
// token: only the most recently issued load may install its result, which
// turns the UI's last-arrived-wins race into deterministic last-issued-wins.
type Controller[T any] struct {
	mu      sync.Mutex
	state   State
	items   []T
	loadSeq uint64
	lastErr string

	fetch Fetcher[T]
	spec  FilterSpec[T]
	notes *Notifier
}

// New creates a controller in the Idle state with an empty collection.
func New[T any](fetch Fetcher[T], spec FilterSpec[T], notes *Notifier) *Controller[T] {
	if notes == nil {
		notes = NewNotifier(DefaultNoticeTTL)
	}
	return &Controller[T]{
		state: StateIdle,
		fetch: fetch,
		spec:  spec,
		notes: notes,
	}
}

// Load re-fetches the collection. On success the new collection replaces the
// old one; on failure the previous (stale) collection is preserved for
// display and the state moves to LoadError. If another load was issued while
// this one was in flight, the late result is discarded.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		// superseded by a newer load
		return nil
	}

	if err != nil {
		c.state = StateLoadError
		c.lastErr = err.Error()
		return err
	}

	// copy so later patches never reach into a slice the fetcher still holds
	c.items = append([]T(nil), items...)
	c.state = StateLoaded
	c.lastErr = ""
	return nil
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the message of the most recent failed load.
func (c *Controller[T]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Items returns a copy of the current collection in load order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Len returns the collection size.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Filtered returns the items matching the criteria, preserving order.
func (c *Controller[T]) Filtered(criteria Criteria) []T {
	return c.spec.Apply(c.Items(), criteria)
}

// Find returns the first item matching pred from the in-memory collection.
func (c *Controller[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the first item matching pred from the in-memory collection.
// This is the local patch used after a successful server-side delete.
func (c *Controller[T]) Remove(pred func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if pred(item) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Patch replaces the first item matching pred with apply(item). Used for
// local flag updates such as marking an inquiry read.
func (c *Controller[T]) Patch(pred func(T) bool, apply func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if pred(item) {
			c.items[i] = apply(item)
			return true
		}
	}
	return false
}

// Notifier returns the controller's notification banner.
func (c *Controller[T]) Notifier() *Notifier {
	return c.notes
}
