package fontinfo

// MetricsCache maps descriptor identities to measured metrics.
//
// Entries are kept in insertion order and are never evicted; the cache
// lives as long as its Registry. MetricsCache is not safe for concurrent
// use on its own. Registry serialises all access to it.
type MetricsCache struct {
	entries map[string]*cacheEntry
	order   []string
}

type cacheEntry struct {
	desc    Descriptor
	metrics Metrics
}

// NewMetricsCache creates an empty cache.
func NewMetricsCache() *MetricsCache {
	return &MetricsCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Has reports whether an entry exists for d.
func (c *MetricsCache) Has(d Descriptor) bool {
	_, ok := c.entries[d.ID()]
	return ok
}

// Get returns the metrics cached for d.
// Returns (zero, false) if there is no entry.
func (c *MetricsCache) Get(d Descriptor) (Metrics, bool) {
	e, ok := c.entries[d.ID()]
	if !ok {
		return Metrics{}, false
	}
	return e.metrics, true
}

// Put inserts or overwrites the entry for d, retaining d so that Keys can
// hand it back for re-measurement.
func (c *MetricsCache) Put(d Descriptor, m Metrics) {
	id := d.ID()
	if e, ok := c.entries[id]; ok {
		e.metrics = m
		return
	}
	c.entries[id] = &cacheEntry{desc: d, metrics: m}
	c.order = append(c.order, id)
}

// Keys returns a snapshot of the cached descriptors in insertion order.
func (c *MetricsCache) Keys() []Descriptor {
	keys := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		keys = append(keys, c.entries[id].desc)
	}
	return keys
}

// Len returns the number of cached entries.
func (c *MetricsCache) Len() int {
	return len(c.entries)
}

// Clear drops every entry.
func (c *MetricsCache) Clear() {
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
}
