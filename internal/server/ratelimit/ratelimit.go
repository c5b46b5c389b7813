// Package ratelimit applies per-client token-bucket budgets to the analysis API.
package ratelimit

import (
	"sync"
	"time"
)

// RouteClass groups the API's routes by cost. Analysis requests may wait on
// the LLM rewriter and get the strictest budget; record reads are cheap; the
// health endpoint is never limited.
type RouteClass int

const (
	ClassUnlimited RouteClass = iota
	ClassAnalyze
	ClassRead
)

// ClassifyRoute maps a request to its cost class.
func ClassifyRoute(method, path string) RouteClass {
	switch {
	case method == "GET" && path == "/health":
		return ClassUnlimited
	case method == "POST" && path == "/analyze":
		return ClassAnalyze
	default:
		return ClassRead
	}
}

// classKey is the per-client bucket key suffix.
func classKey(class RouteClass) string {
	if class == ClassAnalyze {
		return "analyze"
	}
	return "read"
}

// bucket is one client's token budget for one route class. Tokens refill
// continuously up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	rate       float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   float64(capacity),
		rate:       rate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// take refills, then consumes one token if available. It reports whether the
// request may proceed, how many whole tokens remain, and when the bucket will
// be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAccess.Before(cutoff)
}

// Info reports the budget state alongside an Allow decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and route class.
type Limiter struct {
	cfg     *Config
	mu      sync.RWMutex
	buckets map[string]*bucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter. A nil config selects the hosted defaults.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Limiter{cfg: cfg, buckets: make(map[string]*bucket)}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(cfg.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether clientID may hit the given route now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled || l.cfg.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.cfg.Blacklist[clientID] {
		return false, Info{}
	}

	class := ClassifyRoute(method, path)
	if class == ClassUnlimited {
		return true, Info{Allowed: true}
	}
	budget := l.cfg.budgetFor(class)

	b := l.bucketFor(clientID+":"+classKey(class), budget)
	allowed, remaining, reset := b.take()

	info := Info{
		Allowed:   allowed,
		Limit:     budget.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retryAfter := time.Until(reset); retryAfter > 0 {
			info.RetryAfter = retryAfter
		}
	}
	return allowed, info
}

// bucketFor returns the existing bucket for key or creates one sized to the
// budget. Burst is the capacity; an unset burst means the full limit.
func (l *Limiter) bucketFor(key string, budget Budget) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := budget.Burst
	if capacity <= 0 {
		capacity = budget.Limit
	}
	b = newBucket(capacity, float64(budget.Limit)/budget.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.sweep()
		case <-l.cleanupStop:
			return
		}
	}
}

// sweep drops buckets idle for over an hour so one-off clients do not
// accumulate forever.
func (l *Limiter) sweep() {
	cutoff := time.Now().Add(-time.Hour)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
