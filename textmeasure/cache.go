package textmeasure

import (
	"container/list"
	"sync"
)

// sizeCache is an LRU cache of measured text sizes keyed by font and text.
type sizeCache struct {
	mu      sync.Mutex
	maxSize int
	cache   map[cacheKey]*list.Element
	lru     *list.List // Front = most recently used
}

type cacheKey struct {
	font string
	text string
}

type cacheEntry struct {
	key           cacheKey
	width, height float32
}

// newSizeCache creates a new LRU cache with the specified max size.
func newSizeCache(maxSize int) *sizeCache {
	return &sizeCache{
		maxSize: maxSize,
		cache:   make(map[cacheKey]*list.Element),
		lru:     list.New(),
	}
}

// get retrieves a cached size.
func (c *sizeCache) get(key cacheKey) (w, h float32, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*cacheEntry)
		return e.width, e.height, true
	}
	return 0, 0, false
}

// put stores a size, evicting the least recently used entries if needed.
func (c *sizeCache) put(key cacheKey, w, h float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*cacheEntry)
		e.width, e.height = w, h
		return
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.cache, oldest.Value.(*cacheEntry).key)
	}

	c.cache[key] = c.lru.PushFront(&cacheEntry{key: key, width: w, height: h})
}

// len returns the number of cached entries.
func (c *sizeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// clear removes all entries from the cache.
func (c *sizeCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[cacheKey]*list.Element)
	c.lru.Init()
}
