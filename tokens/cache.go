package tokens

import "sync"

// DefaultCacheSize is the default maximum number of memoized entries.
const DefaultCacheSize = 4096

// CachingCounter wraps a Counter with an exact-string memo cache.
// It is safe for concurrent use.
//
// When the cache reaches maxEntries the whole memo is purged rather than
// evicted entry-by-entry; estimation is cheap enough that occasional full
// recomputation beats per-entry bookkeeping.
type CachingCounter struct {
	mu         sync.RWMutex
	inner      Counter
	memo       map[string]int
	maxEntries int
}

// NewCachingCounter wraps the given counter with a memo cache holding at
// most maxEntries entries. If maxEntries is <= 0, DefaultCacheSize is used.
func NewCachingCounter(inner Counter, maxEntries int) *CachingCounter {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &CachingCounter{
		inner:      inner,
		memo:       make(map[string]int),
		maxEntries: maxEntries,
	}
}

// Count estimates the number of tokens in the given text, memoizing the
// result keyed by the literal text.
func (c *CachingCounter) Count(text string) int {
	c.mu.RLock()
	n, ok := c.memo[text]
	c.mu.RUnlock()
	if ok {
		return n
	}

	n = c.inner.Count(text)

	c.mu.Lock()
	if len(c.memo) >= c.maxEntries {
		c.memo = make(map[string]int)
	}
	c.memo[text] = n
	c.mu.Unlock()

	return n
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *CachingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Len returns the number of memoized entries.
func (c *CachingCounter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memo)
}

// Purge drops all memoized entries.
func (c *CachingCounter) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memo = make(map[string]int)
}
