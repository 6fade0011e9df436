package mollie_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	natssrv "github.com/nats-io/nats-server/v2/server"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

func liveEntry(data string) *mollie.CacheEntry {
	return &mollie.CacheEntry{
		Data:      []byte(data),
		ExpiresAt: time.Now().Add(time.Hour),
		ETag:      "etag-" + data,
	}
}

// exerciseCache runs the behavior every backend must share.
func exerciseCache(t *testing.T, cache mollie.Cache) {
	t.Helper()

	ctx := context.Background()
	key := "GET:methods:include=issuers&locale=nl_NL"

	_, err := cache.Get(ctx, key)
	require.ErrorIs(t, err, mollie.ErrCacheMiss)
	assert.False(t, cache.Has(ctx, key))

	require.NoError(t, cache.Set(ctx, key, liveEntry("ideal")))

	entry, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("ideal"), entry.Data)
	assert.Equal(t, "etag-ideal", entry.ETag)
	assert.True(t, cache.Has(ctx, key))

	require.NoError(t, cache.Set(ctx, "GET:permissions", &mollie.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err = cache.Get(ctx, "GET:permissions")
	require.Error(t, err)

	require.NoError(t, cache.Delete(ctx, key))
	assert.False(t, cache.Has(ctx, key))

	require.NoError(t, cache.Set(ctx, "a", liveEntry("a")))
	require.NoError(t, cache.Set(ctx, "b", liveEntry("b")))
	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "a"))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	exerciseCache(t, mollie.NewMemoryCache(10))
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := mollie.NewMemoryCache(2)

	require.NoError(t, cache.Set(ctx, "soon", &mollie.CacheEntry{Data: []byte("1"), ExpiresAt: time.Now().Add(time.Minute)}))
	require.NoError(t, cache.Set(ctx, "late", &mollie.CacheEntry{Data: []byte("2"), ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, cache.Set(ctx, "new", liveEntry("3")))

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "late"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestRedisCache(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)

	cache, err := mollie.NewRedisCache(context.Background(), &mollie.RedisCacheConfig{Addr: server.Addr()})
	require.NoError(t, err)

	t.Cleanup(func() { _ = cache.Close() })

	exerciseCache(t, cache)

	require.NoError(t, cache.Set(context.Background(), "ttl", liveEntry("x")))
	assert.True(t, server.Exists("mollie:response:ttl"))
	assert.Positive(t, server.TTL("mollie:response:ttl"))
}

func TestRedisCache_SharedClient(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	cache, err := mollie.NewRedisCache(context.Background(), &mollie.RedisCacheConfig{Client: client, KeyPrefix: "test:"})
	require.NoError(t, err)

	require.NoError(t, cache.Set(context.Background(), "k", liveEntry("v")))
	assert.True(t, server.Exists("test:k"))

	require.NoError(t, cache.Close())
	require.NoError(t, client.Ping(context.Background()).Err(), "shared client must stay open")
}

func TestRedisCache_RequiresAddress(t *testing.T) {
	t.Parallel()

	_, err := mollie.NewRedisCache(context.Background(), &mollie.RedisCacheConfig{})
	require.ErrorIs(t, err, mollie.ErrRedisAddrRequired)

	_, err = mollie.NewCacheFromConfig(context.Background(), &mollie.CacheConfig{Type: mollie.CacheTypeRedis})
	require.ErrorIs(t, err, mollie.ErrRedisConfigRequired)
}

func startNATS(t *testing.T) string {
	t.Helper()

	srv, err := natssrv.NewServer(&natssrv.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
		NoLog:     true,
		NoSigs:    true,
	})
	require.NoError(t, err)

	go srv.Start()

	require.True(t, srv.ReadyForConnections(10*time.Second), "nats server did not become ready")

	t.Cleanup(func() {
		srv.Shutdown()
		srv.WaitForShutdown()
	})

	return srv.ClientURL()
}

func TestNATSKVCache(t *testing.T) {
	t.Parallel()

	url := startNATS(t)

	cache, err := mollie.NewCacheFromConfig(context.Background(), &mollie.CacheConfig{
		Type: mollie.CacheTypeNATS,
		NATS: &mollie.NATSKVConfig{URL: url, Bucket: "responses"},
	})
	require.NoError(t, err)

	natsCache, ok := cache.(*mollie.NATSKVCache)
	require.True(t, ok)

	t.Cleanup(func() { _ = natsCache.Close() })

	exerciseCache(t, cache)
}

func TestNATSKVCache_RequiresURL(t *testing.T) {
	t.Parallel()

	_, err := mollie.NewNATSKVCache(context.Background(), &mollie.NATSKVConfig{})
	require.ErrorIs(t, err, mollie.ErrNATSURLRequired)

	_, err = mollie.NewCacheFromConfig(context.Background(), &mollie.CacheConfig{Type: mollie.CacheTypeNATS})
	require.ErrorIs(t, err, mollie.ErrNATSConfigRequired)
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cache, err := mollie.NewCacheFromConfig(ctx, nil)
	require.NoError(t, err)
	assert.IsType(t, &mollie.MemoryCache{}, cache)

	cache, err = mollie.NewCacheFromConfig(ctx, &mollie.CacheConfig{Type: mollie.CacheTypeNone})
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, "k", liveEntry("v")))
	_, err = cache.Get(ctx, "k")
	require.ErrorIs(t, err, mollie.ErrCacheDisabled)

	_, err = mollie.NewCacheFromConfig(ctx, &mollie.CacheConfig{Type: "memcached"})
	require.ErrorIs(t, err, mollie.ErrUnsupportedCacheType)

	built := mollie.NewCacheBuilder().WithMemoryConfig(5).WithTTL(time.Minute).Config()
	assert.Equal(t, 5, built.Memory.MaxSize)
	assert.Equal(t, time.Minute, built.CachingPolicy().TTL)
}

func TestCacheChain_BackfillsFasterLevels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := mollie.NewMemoryCache(10)
	l2 := mollie.NewMemoryCache(10)
	chain := mollie.NewCacheChain(l1, l2)

	require.NoError(t, l2.Set(ctx, "k", liveEntry("v")))
	assert.False(t, l1.Has(ctx, "k"))

	entry, err := chain.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), entry.Data)
	assert.True(t, l1.Has(ctx, "k"))

	require.NoError(t, chain.Delete(ctx, "k"))
	assert.False(t, chain.Has(ctx, "k"))

	_, err = chain.Get(ctx, "k")
	require.ErrorIs(t, err, mollie.ErrKeyNotFoundInAnyCache)
}

func TestCacheManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := mollie.NewCacheManager(mollie.NewMemoryCache(10), nil)

	key := manager.GetCacheKey("GET", "methods", map[string]string{"locale": "nl_NL", "include": "issuers"})
	assert.Equal(t, "GET:methods:include=issuers&locale=nl_NL", key)
	assert.Equal(t, "GET:methods/ideal", manager.GetCacheKey("GET", "methods/ideal", nil))

	_, err := manager.Get(ctx, key)
	require.Error(t, err)

	require.NoError(t, manager.SetWithETag(ctx, key, []byte("body"), `W/"1"`, time.Minute))
	require.NoError(t, manager.Set(ctx, "GET:methods/ideal", []byte("ideal"), time.Minute))
	require.NoError(t, manager.Set(ctx, "GET:payments", []byte("payments"), time.Minute))

	data, err := manager.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("body"), data)
	assert.Equal(t, `W/"1"`, manager.ETag(ctx, key))

	manager.InvalidatePath(ctx, "methods")

	_, err = manager.Get(ctx, key)
	require.Error(t, err)
	_, err = manager.Get(ctx, "GET:methods/ideal")
	require.Error(t, err)
	_, err = manager.Get(ctx, "GET:payments")
	require.NoError(t, err)

	stats := manager.GetStats()
	assert.Equal(t, int64(3), stats.Sets)
	assert.Equal(t, int64(2), stats.Invalidations)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(3), stats.Misses)
	assert.InDelta(t, 0.4, stats.GetHitRate(), 0.001)
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	policy := mollie.DefaultCachingPolicy()

	assert.True(t, policy.ShouldCache("GET", "methods", 200))
	assert.True(t, policy.ShouldCache("GET", "/permissions/payments.read", 200))
	assert.False(t, policy.ShouldCache("GET", "payments/tr_x", 200))
	assert.False(t, policy.ShouldCache("GET", "methods", 404))
	assert.False(t, policy.ShouldCache("POST", "methods", 200))
	assert.False(t, policy.ShouldCache("DELETE", "methods", 200))

	policy.ExcludePaths = []string{"methods/all"}
	assert.False(t, policy.ShouldCache("GET", "methods/all", 200))
	assert.True(t, policy.ShouldCache("GET", "methods/ideal", 200))
}
