package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		method, path string
		want         RouteClass
	}{
		{"GET", "/health", ClassUnlimited},
		{"POST", "/analyze", ClassAnalyze},
		{"GET", "/analyses/42", ClassRead},
		{"GET", "/analyze", ClassRead}, // wrong method, not the expensive route
		{"POST", "/health", ClassRead},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRoute(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		allowed, remaining, _ := b.take()
		assert.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 9-i, remaining)
	}

	allowed, remaining, reset := b.take()
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.True(t, reset.After(time.Now()))
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(2, 10.0) // refills fast enough to keep the test quick

	b.take()
	b.take()
	allowed, _, _ := b.take()
	assert.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, _, _ = b.take()
	assert.True(t, allowed, "token should have refilled")
}

func testConfig() *Config {
	return &Config{
		Enabled: true,
		Analyze: Budget{Limit: 60, Window: time.Hour, Burst: 3},
		Read:    Budget{Limit: 100, Window: time.Minute},
	}
}

func TestLimiter_AnalyzeBudgetIsStrict(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyze", "POST")
		assert.True(t, allowed, "burst request %d", i+1)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ReadBudgetIsSeparate(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Exhaust the analyze burst first.
	for i := 0; i < 4; i++ {
		limiter.Allow("10.0.0.1", "/analyze", "POST")
	}

	allowed, info := limiter.Allow("10.0.0.1", "/analyses/42", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	cfg := testConfig()
	cfg.Read = Budget{Limit: 1, Window: time.Hour}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/health", "GET")
		assert.True(t, allowed, "health request %d", i+1)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Analyze = Budget{Limit: 1, Window: time.Hour, Burst: 1}
	cfg.Whitelist = map[string]bool{"10.0.0.2": true}
	cfg.Blacklist = map[string]bool{"10.0.0.3": true}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("10.0.0.2", "/analyze", "POST")
		assert.True(t, allowed, "whitelisted request %d", i+1)
	}

	allowed, _ := limiter.Allow("10.0.0.3", "/analyses/42", "GET")
	assert.False(t, allowed, "blacklisted client is always denied")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_ClientsAreIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedPerClient := map[string]int{}

	// Two clients each fire 10 analyze requests; each gets its own burst of 3.
	for c := 0; c < 2; c++ {
		clientID := fmt.Sprintf("10.0.1.%d", c)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				if allowed, _ := limiter.Allow(id, "/analyze", "POST"); allowed {
					mu.Lock()
					allowedPerClient[id]++
					mu.Unlock()
				}
			}(clientID)
		}
	}
	wg.Wait()

	for id, n := range allowedPerClient {
		assert.Equal(t, 3, n, id)
	}
}

func TestLimiter_SweepDropsIdleBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/analyses/42", "GET")
	limiter.mu.RLock()
	assert.Len(t, limiter.buckets, 1)
	limiter.mu.RUnlock()

	// Backdate the bucket past the idle cutoff, then sweep.
	limiter.mu.Lock()
	for _, b := range limiter.buckets {
		b.lastAccess = time.Now().Add(-2 * time.Hour)
	}
	limiter.mu.Unlock()
	limiter.sweep()

	limiter.mu.RLock()
	assert.Empty(t, limiter.buckets)
	limiter.mu.RUnlock()
}

func TestNewLimiter_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/analyses/42", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}
