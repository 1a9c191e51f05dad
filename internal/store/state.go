// Package store holds the entity state stores: in-memory collections that
// mirror the server after every accepted write.
package store

import "sync"

type entity interface {
	EntityID() string
}

// Loadable is a collection that has either not been loaded yet or holds the
// last items the server returned. A loaded collection may be empty.
type Loadable[T any] struct {
	items  []T
	loaded bool
}

// NotLoaded returns the initial state of every collection.
func NotLoaded[T any]() Loadable[T] {
	return Loadable[T]{}
}

// Loaded returns a loaded collection holding a copy of items.
func Loaded[T any](items []T) Loadable[T] {
	return Loadable[T]{items: clone(items), loaded: true}
}

// IsLoaded reports whether the collection was loaded.
func (l Loadable[T]) IsLoaded() bool {
	return l.loaded
}

// Items returns a copy of the items, or nil when not loaded.
func (l Loadable[T]) Items() []T {
	if !l.loaded {
		return nil
	}
	return clone(l.items)
}

// Len returns the number of items.
func (l Loadable[T]) Len() int {
	return len(l.items)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func indexOf[T entity](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// upserted returns items with item replacing the element of the same id, or
// appended when there is none.
func upserted[T entity](items []T, item T) []T {
	out := clone(items)
	if i := indexOf(out, item.EntityID()); i >= 0 {
		out[i] = item
		return out
	}
	return append(out, item)
}

// replaced returns items with item replacing the element of the same id. It
// reports false when no element matched.
func replaced[T entity](items []T, item T) ([]T, bool) {
	i := indexOf(items, item.EntityID())
	if i < 0 {
		return items, false
	}
	out := clone(items)
	out[i] = item
	return out, true
}

// removed returns items without the element of the given id.
func removed[T entity](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// list is the primary collection of a store. Every write swaps in a new
// slice, so a slice once handed out is never mutated.
type list[T entity] struct {
	mu    sync.RWMutex
	state Loadable[T]
}

func (l *list[T]) snapshot() Loadable[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *list[T]) find(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := indexOf(l.state.items, id); i >= 0 {
		return l.state.items[i], true
	}
	var zero T
	return zero, false
}

func (l *list[T]) replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Loaded(items)
}

// add upserts item, loading the collection if it was not loaded yet.
func (l *list[T]) add(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Loadable[T]{items: upserted(l.state.items, item), loaded: true}
}

// update replaces the element with item's id. It leaves an unloaded
// collection alone.
func (l *list[T]) update(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.state.loaded {
		return false
	}
	items, ok := replaced(l.state.items, item)
	if ok {
		l.state.items = items
	}
	return ok
}

func (l *list[T]) remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	items, ok := removed(l.state.items, id)
	if ok {
		l.state.items = items
	}
	return ok
}

// nested maps a parent id to the collection of its children. The map itself
// is copy-on-write: every change installs a new map, so a writer for one
// parent never mutates a map another reader holds.
type nested[T entity] struct {
	mu       sync.RWMutex
	byParent map[string][]T
}

func (n *nested[T]) get(parentID string) Loadable[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	items, ok := n.byParent[parentID]
	if !ok {
		return NotLoaded[T]()
	}
	return Loadable[T]{items: items, loaded: true}
}

func (n *nested[T]) write(parentID string, items []T, keep bool) {
	next := make(map[string][]T, len(n.byParent)+1)
	for k, v := range n.byParent {
		next[k] = v
	}
	if keep {
		next[parentID] = items
	} else {
		delete(next, parentID)
	}
	n.byParent = next
}

func (n *nested[T]) set(parentID string, items []T) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.write(parentID, clone(items), true)
}

func (n *nested[T]) add(parentID string, item T) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.write(parentID, upserted(n.byParent[parentID], item), true)
}

func (n *nested[T]) update(parentID string, item T) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	current, ok := n.byParent[parentID]
	if !ok {
		return false
	}
	items, ok := replaced(current, item)
	if ok {
		n.write(parentID, items, true)
	}
	return ok
}

func (n *nested[T]) remove(parentID, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	items, ok := removed(n.byParent[parentID], id)
	if ok {
		n.write(parentID, items, true)
	}
	return ok
}

// drop forgets everything known about parentID.
func (n *nested[T]) drop(parentID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.byParent[parentID]; !ok {
		return false
	}
	n.write(parentID, nil, false)
	return true
}
