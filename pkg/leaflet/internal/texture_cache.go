package internal

import "container/list"

// Destroyer is anything holding GPU or C memory, such as *sdl.Texture.
type Destroyer interface {
	Destroy() error
}

// Cache keeps the most recently used values and destroys the ones it
// evicts. The zero value is not usable; call NewCache.
type Cache[K comparable, V Destroyer] struct {
	max     int
	order   *list.List // front is most recent
	entries map[K]*list.Element
}

type cacheEntry[K comparable, V Destroyer] struct {
	key   K
	value V
}

// NewCache creates a cache holding at most size values.
func NewCache[K comparable, V Destroyer](size int) *Cache[K, V] {
	if size < 1 {
		size = 1
	}
	return &Cache[K, V]{
		max:     size,
		order:   list.New(),
		entries: make(map[K]*list.Element, size),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value for key. A value already stored under key is destroyed
// unless it is the same value.
func (c *Cache[K, V]) Set(key K, value V) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry[K, V])
		if any(entry.value) != any(value) {
			_ = entry.value.Destroy()
		}
		entry.value = value
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})

	for c.order.Len() > c.max {
		c.evict(c.order.Back())
	}
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Destroy destroys and forgets every cached value.
func (c *Cache[K, V]) Destroy() {
	for c.order.Len() > 0 {
		c.evict(c.order.Back())
	}
}

func (c *Cache[K, V]) evict(el *list.Element) {
	entry := c.order.Remove(el).(*cacheEntry[K, V])
	delete(c.entries, entry.key)
	_ = entry.value.Destroy()
}
