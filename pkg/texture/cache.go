package texture

import (
	"container/list"
	"image"
	"sync"
)

// tileKey identifies a cached tile by its family id and variant subId.
type tileKey struct {
	id    int
	subID int
}

type cacheEntry struct {
	key tileKey
	img image.Image
}

// Statistics tracks cache hit/miss counters, mirroring the teacher sprite
// cache's bookkeeping so callers can judge whether the cache size is paying
// for itself.
type Statistics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 when nothing has been
// requested yet.
func (s Statistics) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a fixed-capacity LRU in front of a Provider, keyed by (id,
// subId) so repeated requests for the same tile variant — the common case
// once a dungeon has been rasterised, since most wall cells share one of
// thirteen orientations — cost one Tile call instead of one per cell.
type Cache struct {
	mu       sync.RWMutex
	provider Provider
	capacity int
	entries  map[tileKey]*list.Element
	order    *list.List
	stats    Statistics
}

// NewCache wraps provider with an LRU of the given capacity. A non-positive
// capacity disables eviction tracking bookkeeping but still caches
// everything requested (capacity is then treated as unbounded).
func NewCache(provider Provider, capacity int) *Cache {
	return &Cache{
		provider: provider,
		capacity: capacity,
		entries:  make(map[tileKey]*list.Element),
		order:    list.New(),
	}
}

// Tile implements Provider, serving from cache when possible and otherwise
// delegating to the wrapped provider and storing the result.
func (c *Cache) Tile(id, subID int) (image.Image, error) {
	key := tileKey{id: id, subID: subID}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		c.stats.Hits++
		img := el.Value.(*cacheEntry).img
		c.mu.Unlock()
		return img, nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	img, err := c.provider.Tile(id, subID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).img, nil
	}
	el := c.order.PushFront(&cacheEntry{key: key, img: img})
	c.entries[key] = el
	c.evictIfNeeded()
	return img, nil
}

func (c *Cache) evictIfNeeded() {
	if c.capacity <= 0 {
		return
	}
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			return
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.stats.Evictions++
	}
}

// Statistics returns a snapshot of the cache's hit/miss/eviction counters.
func (c *Cache) Statistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Len reports how many tiles are currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}
