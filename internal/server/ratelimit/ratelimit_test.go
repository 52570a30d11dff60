package ratelimit

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced manually so refill behaviour is deterministic.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.Now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", http.MethodGet, "/courses")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", http.MethodGet, "/courses")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, 6.0, info.RetryAfter.Seconds(), 0.001)
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 60, DefaultWindow: time.Minute})

	for i := 0; i < 60; i++ {
		allowed, _ := l.Allow("c", http.MethodGet, "/x")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("c", http.MethodGet, "/x")
	require.False(t, allowed)

	// One token per second
	clock.Advance(time.Second)
	allowed, _ = l.Allow("c", http.MethodGet, "/x")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", http.MethodGet, "/x")
	assert.False(t, allowed)
}

func TestLimiter_ResetTime(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 60, DefaultWindow: time.Minute})

	for i := 0; i < 5; i++ {
		l.Allow("c", http.MethodGet, "/x")
	}
	_, info := l.Allow("c", http.MethodGet, "/x")

	assert.Equal(t, 54, info.Remaining)
	assert.True(t, clock.Now().Add(6*time.Second).Equal(info.ResetTime))
}

func TestLimiter_AllowList(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Allow:         map[string]bool{"127.0.0.1": true},
	})

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("127.0.0.1", http.MethodPost, "/recommend")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_DenyList(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Deny:          map[string]bool{"192.168.1.1": true},
	})

	allowed, _ := l.Allow("192.168.1.1", http.MethodGet, "/courses")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: false})

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("127.0.0.1", http.MethodPost, "/recommend")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_EndpointRules(t *testing.T) {
	cfg := DefaultConfig()
	l, _ := newTestLimiter(t, cfg)

	// Burst of 10 for /recommend
	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("c", http.MethodPost, "/recommend")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 60, info.Limit)
	}
	allowed, _ := l.Allow("c", http.MethodPost, "/recommend")
	assert.False(t, allowed)

	// Export has its own bucket
	allowed, info := l.Allow("c", http.MethodPost, "/recommend/export")
	assert.True(t, allowed)
	assert.Equal(t, 30, info.Limit)

	// Catalog reads fall back to the default limit
	allowed, info = l.Allow("c", http.MethodGet, "/courses")
	assert.True(t, allowed)
	assert.Equal(t, cfg.DefaultLimit, info.Limit)

	// Health is never metered
	for i := 0; i < 1000; i++ {
		allowed, info = l.Allow("c", http.MethodGet, "/health")
		require.True(t, allowed)
	}
	assert.Zero(t, info.Limit)
}

func TestLimiter_PrefixRuleSharesBucket(t *testing.T) {
	l, _ := newTestLimiter(t, DefaultConfig())

	// Burst of 50 for GET /courses/, shared across course names
	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("c", http.MethodGet, fmt.Sprintf("/courses/x%d", i))
		require.True(t, allowed, "request %d", i+1)
	}
	allowed, info := l.Allow("c", http.MethodGet, "/courses/x50")
	assert.False(t, allowed)
	assert.Equal(t, 300, info.Limit)

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
}

func TestLimiter_UnmatchedPathsShareDefaultBucket(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 3, DefaultWindow: time.Minute})

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("c", http.MethodGet, fmt.Sprintf("/unknown/%d", i))
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("c", http.MethodDelete, "/elsewhere")
	assert.False(t, allowed)

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
}

func TestLimiter_SeparateClients(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	allowed, _ := l.Allow("a", http.MethodGet, "/courses")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", http.MethodGet, "/courses")
	assert.False(t, allowed)

	allowed, _ = l.Allow("b", http.MethodGet, "/courses")
	assert.True(t, allowed)
}

func TestLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 5, DefaultWindow: time.Minute, IdleTTL: time.Hour})

	l.Allow("old", http.MethodGet, "/courses")
	clock.Advance(2 * time.Hour)
	l.Allow("new", http.MethodGet, "/courses")

	l.cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "new default")
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if ok, _ := l.Allow("shared", http.MethodPost, "/recommend"); ok {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, granted)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute, CleanupInterval: time.Millisecond})
	assert.NotPanics(t, func() {
		l.Stop()
		l.Stop()
	})
}

func TestMatch(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		method, path string
		wantLimit    int
		wantNil      bool
	}{
		{http.MethodPost, "/recommend", 60, false},
		{http.MethodPost, "/recommend/export", 30, false},
		{http.MethodGet, "/courses/Computer Science", 300, false},
		{http.MethodGet, "/courses", 0, true},
		{http.MethodGet, "/recommend", 0, true},
		{http.MethodGet, "/health", 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			rule := Match(tt.method, tt.path, rules)
			if tt.wantNil {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantLimit, rule.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvDefaultLimit, "42")
	t.Setenv(EnvDefaultWindow, "30s")
	t.Setenv(EnvAllowList, "10.0.0.1, 10.0.0.2,")
	t.Setenv(EnvDenyList, "bogus")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Allow)
	assert.True(t, cfg.Deny["bogus"])
	assert.Equal(t, DefaultRules(), cfg.Rules)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv(EnvEnabled, "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Rules)
}

func TestLoadConfig_MalformedFallsBack(t *testing.T) {
	t.Setenv(EnvDefaultLimit, "lots")
	t.Setenv(EnvDefaultWindow, "soon")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().DefaultLimit, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
}
