package weburl

import (
	"sync"

	"github.com/projectdiscovery/gcache"
)

// ResolutionCache memoizes ParseRef resolutions keyed by (base, relative),
// grounded on urlprobe.go's ProbeResultsCache/gcache.New[...](n).LRU().Build()
// pattern. Resolving the same relative reference against the same base is
// common in crawlers walking a single document's links repeatedly; the
// cache turns that into a map lookup instead of a re-parse.
type ResolutionCache struct {
	sync.RWMutex
	entries gcache.Cache[string, *URL]
}

// NewResolutionCache builds a cache holding up to capacity resolved URLs.
func NewResolutionCache(capacity int) *ResolutionCache {
	if capacity <= 0 {
		capacity = 1000
	}
	return &ResolutionCache{
		entries: gcache.New[string, *URL](capacity).
			LRU().
			Build(),
	}
}

func resolutionKey(base *URL, relative string) string {
	if base == nil {
		return "\x00" + relative
	}
	return base.String() + "\x00" + relative
}

// Resolve returns the cached resolution of relative against base, parsing
// and populating the cache on a miss. A cache hit returns a shared *URL;
// callers must not mutate it (setters always return a new value, so this
// is safe under the package's normal usage).
func (c *ResolutionCache) Resolve(base *URL, relative string) (*URL, error) {
	key := resolutionKey(base, relative)

	c.RLock()
	if cached, err := c.entries.Get(key); err == nil {
		c.RUnlock()
		return cached, nil
	}
	c.RUnlock()

	resolved, err := ParseRef(relative, base)
	if err != nil {
		return nil, err
	}

	c.Lock()
	_ = c.entries.Set(key, resolved)
	c.Unlock()

	return resolved, nil
}

// Purge discards every cached resolution.
func (c *ResolutionCache) Purge() {
	c.Lock()
	defer c.Unlock()
	c.entries.Purge()
}
