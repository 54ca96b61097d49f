// Package btlb implements the B-TLB: a bounded, LRU-evicted cache of
// leaf translations (block tag to DBA index) that lets DBRC bypass the
// translation walker on repeat accesses.
package btlb

import "container/list"

// Cache is a bounded map from block tag to DBA index with LRU eviction.
// The map and the recency list are always mutated together so neither
// can drift out of sync with the other.
type Cache struct {
	capacity int
	entries  map[uint64]*list.Element
	recency  *list.List // front = most recently used
}

type entry struct {
	tag uint64
	idx uint32
}

// New creates a B-TLB with the given capacity.
func New(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element),
		recency:  list.New(),
	}
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Get looks up tag, moving it to the most-recently-used position on hit.
func (c *Cache) Get(tag uint64) (idx uint32, ok bool) {
	elem, found := c.entries[tag]
	if !found {
		return 0, false
	}

	c.recency.MoveToFront(elem)

	return elem.Value.(*entry).idx, true
}

// Put inserts or updates the mapping tag -> idx, evicting the least
// recently used entry if the cache is over capacity afterward.
func (c *Cache) Put(tag uint64, idx uint32) {
	if elem, found := c.entries[tag]; found {
		elem.Value.(*entry).idx = idx
		c.recency.MoveToFront(elem)
		return
	}

	elem := c.recency.PushFront(&entry{tag: tag, idx: idx})
	c.entries[tag] = elem

	if len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// Invalidate removes tag from the cache, if present.
func (c *Cache) Invalidate(tag uint64) {
	elem, found := c.entries[tag]
	if !found {
		return
	}

	c.recency.Remove(elem)
	delete(c.entries, tag)
}

func (c *Cache) evictOldest() {
	oldest := c.recency.Back()
	if oldest == nil {
		return
	}

	c.recency.Remove(oldest)
	delete(c.entries, oldest.Value.(*entry).tag)
}
