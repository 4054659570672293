package layout

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// entryKey pairs a layout signature with the area it was split over.
type entryKey struct {
	sig  string
	area Rect
}

// CacheStats reports how a LayoutCache has been used since it was created.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// LayoutCache memoizes Split results. Two layouts with equal direction,
// margin and constraints share entries. A sheet redrawn at the same size
// reuses every nested split; callers clear it when the size changes.
type LayoutCache struct {
	mu      sync.RWMutex
	entries map[entryKey][]Rect

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLayoutCache returns an empty cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{entries: make(map[entryKey][]Rect)}
}

// Get returns a copy of the rects stored for l over area.
func (c *LayoutCache) Get(l *Layout, area Rect) ([]Rect, bool) {
	k := entryKey{sig: signature(l), area: area}
	c.mu.RLock()
	rects, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return append([]Rect(nil), rects...), true
}

// Put stores a copy of rects for l over area.
func (c *LayoutCache) Put(l *Layout, area Rect, rects []Rect) {
	k := entryKey{sig: signature(l), area: area}
	stored := append([]Rect(nil), rects...)
	c.mu.Lock()
	c.entries[k] = stored
	c.mu.Unlock()
}

// SplitCached is l.Split(area) served from the cache when possible.
func (c *LayoutCache) SplitCached(l *Layout, area Rect) []Rect {
	if rects, ok := c.Get(l, area); ok {
		return rects
	}
	rects := l.Split(area)
	c.Put(l, area, rects)
	return rects
}

// Invalidate drops every entry. Hit and miss counts are kept.
func (c *LayoutCache) Invalidate() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

// Len returns the number of stored entries.
func (c *LayoutCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the entry count and lookup counters.
func (c *LayoutCache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// signature encodes a layout as "<dir>/<margin>:<constraints>", e.g.
// "V/1:P15|P10|F3". Unknown constraint types encode as '?'.
func signature(l *Layout) string {
	buf := make([]byte, 0, 8+len(l.constraints)*5)
	if l.Direction() == Horizontal {
		buf = append(buf, 'H')
	} else {
		buf = append(buf, 'V')
	}
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(l.Margin()), 10)
	buf = append(buf, ':')
	for i, c := range l.constraints {
		if i > 0 {
			buf = append(buf, '|')
		}
		var tag byte
		var v int
		switch c := c.(type) {
		case Percentage:
			tag, v = 'P', c.Value
		case Fixed:
			tag, v = 'F', c.Value
		case Min:
			tag, v = 'm', c.Value
		case Max:
			tag, v = 'M', c.Value
		default:
			buf = append(buf, '?')
			continue
		}
		buf = append(buf, tag)
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}
