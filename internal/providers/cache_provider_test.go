package providers

import (
	"fauna/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// local mock logger to avoid import cycle with testutil
type cacheTestLogger struct {
	infos int
}

func (m *cacheTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  { m.infos++ }
func (m *cacheTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Close()                                        {}

func cacheConfig(enabled bool, size int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
			TTL:     ttl,
		},
	}
}

func TestNewCacheProvider_Selection(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		size    int
		want    CacheProviderInterface
	}{
		{"disabled", false, 10, &noopCache{}},
		{"zero size", true, 0, &noopCache{}},
		{"enabled", true, 1, &CacheProvider{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &cacheTestLogger{}
			c := NewCacheProvider(cacheConfig(tt.enabled, tt.size, time.Minute), logger)
			assert.IsType(t, tt.want, c)
			assert.Equal(t, 1, logger.infos)
		})
	}
}

func TestCacheProvider_TTLFromConfig(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 90*time.Second), &cacheTestLogger{})
	require.IsType(t, &CacheProvider{}, c)
	assert.Equal(t, 90, c.(*CacheProvider).ttl)

	c = NewCacheProvider(cacheConfig(true, 1, 0), &cacheTestLogger{})
	assert.Equal(t, 1, c.(*CacheProvider).ttl)
}

func TestCacheProvider_ViewStatsLifecycle(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, time.Minute), &cacheTestLogger{})

	_, ok := c.Get("views:stats")
	assert.False(t, ok)

	c.Set("views:stats", []byte(`{"totalViews":1}`))
	c.Set("views:stats", []byte(`{"totalViews":2}`))
	val, ok := c.Get("views:stats")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"totalViews":2}`), val)

	c.Del("views:stats")
	_, ok = c.Get("views:stats")
	assert.False(t, ok)
}

func TestCacheProvider_SetWithTTLExpires(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, time.Hour), &cacheTestLogger{})

	c.SetWithTTL("daily:Sat Oct 17 2026", []byte("[]"), time.Second)
	_, ok := c.Get("daily:Sat Oct 17 2026")
	assert.True(t, ok)

	time.Sleep(2100 * time.Millisecond)

	_, ok = c.Get("daily:Sat Oct 17 2026")
	assert.False(t, ok)
}

func TestNoopCache_AlwaysMiss(t *testing.T) {
	c := &noopCache{}
	c.Set("views:stats", []byte("{}"))
	c.SetWithTTL("daily:Sat Oct 17 2026", []byte("[]"), time.Hour)

	val, ok := c.Get("views:stats")
	assert.False(t, ok)
	assert.Nil(t, val)
	_, ok = c.Get("daily:Sat Oct 17 2026")
	assert.False(t, ok)
}
