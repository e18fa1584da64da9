package providers

import (
	"fauna/internal/structures"
	"time"
	"unsafe"

	"github.com/coocood/freecache"
)

// CacheProviderInterface caches rendered JSON responses by key.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	// SetWithTTL overrides the configured expiry for one entry.
	SetWithTTL(key string, value []byte, ttl time.Duration)
	Del(key string)
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := ttlSeconds(conf.Cache.TTL)

	logger.Infof(TypeApp, "Response cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// ttlSeconds rounds d down to whole seconds, never below one.
func ttlSeconds(d time.Duration) int {
	return max(int(d.Seconds()), 1)
}

// unsafeStringToBytes converts string to []byte without allocation.
// freecache copies keys internally, so the result is never written.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) SetWithTTL(key string, value []byte, ttl time.Duration) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, ttlSeconds(ttl))
}

func (c *CacheProvider) Del(key string) {
	c.cache.Del(unsafeStringToBytes(key))
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)                    { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)                         {}
func (n *noopCache) SetWithTTL(_ string, _ []byte, _ time.Duration) {}
func (n *noopCache) Del(_ string)                                   {}
