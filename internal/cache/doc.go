// Package cache provides a small LRU cache for memoizing pure computations,
// such as integrating a spectrum at a given temperature.
//
//	c := cache.New[float64, Point](1024)
//	c.Set(6500, p)
//	p, ok := c.Get(6500)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
