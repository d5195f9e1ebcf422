package repository

import "sync"

// collection is a keyed map with its own identifier counter. Identifiers start
// at 1 and are never reused, even after a delete.
type collection[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	order  []uint64
	items  map[uint64]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		nextID: 1,
		items:  make(map[uint64]T),
	}
}

// insert reserves the next identifier and stores the value built for it.
func (c *collection[T]) insert(build func(id uint64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	v := build(id)
	c.items[id] = v
	c.order = append(c.order, id)
	return v
}

func (c *collection[T]) get(id uint64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// all returns the values in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) update(id uint64, fn func(v T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	v = fn(v)
	c.items[id] = v
	return v, true
}

func (c *collection[T]) remove(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}
