package journal

import (
	"time"

	"github.com/patrickmn/go-cache"
)

func newTestCache() *cache.Cache {
	return cache.New(time.Minute, time.Minute)
}

func newTestCacheTTL(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, ttl)
}
