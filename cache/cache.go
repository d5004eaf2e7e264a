// Package cache provides a bounded in-memory cache with least-recently-used eviction.
package cache

// node is an entry in the cache's doubly linked access list.
type node[K comparable, V any] struct {
	prev  *node[K, V]
	next  *node[K, V]
	key   K
	value V
}

// Bounded is a fixed-capacity cache. When full, insertions evict the
// least recently used entry. It is not safe for concurrent use.
type Bounded[K comparable, V any] struct {
	nodeByKey map[K]*node[K, V]
	capacity  int

	// head is the least recently used node, tail the most recently used.
	head *node[K, V]
	tail *node[K, V]
}

// NewBounded returns a new bounded cache holding at most capacity entries.
func NewBounded[K comparable, V any](capacity int) *Bounded[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[K, V]{
		nodeByKey: make(map[K]*node[K, V], capacity),
		capacity:  capacity,
	}
}

// Len returns the number of entries in the cache.
func (c *Bounded[K, V]) Len() int {
	return len(c.nodeByKey)
}

// Cap returns the maximum number of entries the cache can hold.
func (c *Bounded[K, V]) Cap() int {
	return c.capacity
}

// Get returns the value associated with key and marks it most recently used.
func (c *Bounded[K, V]) Get(key K) (value V, ok bool) {
	n, ok := c.nodeByKey[key]
	if !ok {
		return value, false
	}
	c.moveToTail(n)
	return n.value, true
}

// Put inserts or updates the value associated with key,
// evicting the least recently used entry if the cache is full.
func (c *Bounded[K, V]) Put(key K, value V) {
	if n, ok := c.nodeByKey[key]; ok {
		n.value = value
		c.moveToTail(n)
		return
	}

	if len(c.nodeByKey) == c.capacity {
		evicted := c.head
		c.unlink(evicted)
		delete(c.nodeByKey, evicted.key)
	}

	n := &node[K, V]{key: key, value: value}
	c.nodeByKey[key] = n
	c.linkTail(n)
}

// Clear removes all entries from the cache.
func (c *Bounded[K, V]) Clear() {
	clear(c.nodeByKey)
	c.head = nil
	c.tail = nil
}

func (c *Bounded[K, V]) moveToTail(n *node[K, V]) {
	if c.tail == n {
		return
	}
	c.unlink(n)
	c.linkTail(n)
}

func (c *Bounded[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

func (c *Bounded[K, V]) linkTail(n *node[K, V]) {
	n.prev = c.tail
	if c.tail != nil {
		c.tail.next = n
	} else {
		c.head = n
	}
	c.tail = n
}
