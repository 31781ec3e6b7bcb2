// Package cache provides the bounded LRU cache used by the measurement
// backends to memoise glyph advances.
//
//	advances := cache.New[advanceKey, float64](4096)
//	w := advances.GetOrCreate(key, func() float64 { return measure(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
