package meval

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	src  string
	expr *Expr
}

// Cache is an LRU cache of compiled expressions keyed by their source text.
// Once the capacity is reached, the least recently used expression is evicted.
// Evicted expressions are not released, so callers may keep using them.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	opts     []Option
	ll       *list.List
	items    map[string]*list.Element
}

// NewCache creates a cache holding up to capacity expressions, compiled with
// the given options. If capacity is not positive, the capacity is 256.
func NewCache(capacity int, opts ...Option) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		capacity: capacity,
		opts:     append([]Option(nil), opts...),
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached expression for src, if there is one. Expressions
// that have been released are dropped from the cache instead.
func (c *Cache) Get(src string) (*Expr, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[src]
	if !ok {
		return nil, false
	}
	e := el.Value.(*cacheEntry).expr
	if e.released.Load() {
		c.ll.Remove(el)
		delete(c.items, src)
		return nil, false
	}
	c.ll.MoveToFront(el)
	return e, true
}

// Compile returns the cached expression for src, compiling and caching it if
// it is not present. Errors are not cached.
func (c *Cache) Compile(src string) (*Expr, error) {
	if e, ok := c.Get(src); ok {
		return e, nil
	}
	// Compile outside the lock. Two goroutines may compile the same source;
	// the later one wins.
	e, err := Compile(src, c.opts...)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[src]; ok {
		el.Value.(*cacheEntry).expr = e
		c.ll.MoveToFront(el)
		return e, nil
	}
	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}
	c.items[src] = c.ll.PushFront(&cacheEntry{src: src, expr: e})
	return e, nil
}

// Eval evaluates src with vars, compiling it only if it is not cached.
func (c *Cache) Eval(src string, vars *Vars) (float64, error) {
	e, err := c.Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Invalidate removes the expression for src from the cache.
func (c *Cache) Invalidate(src string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[src]; ok {
		c.ll.Remove(el)
		delete(c.items, src)
	}
}

// Clear removes all expressions from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

// evictLocked removes the least recently used entry. c.mu must be held.
func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).src)
}
