// Package ratelimit limits how often a single remote address may open
// game sessions.
package ratelimit

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Config configures the per-IP limiter.
type Config struct {
	PerSecond       float64       // Sessions allowed per second per IP
	Burst           int           // Maximum burst size
	CleanupInterval time.Duration // How often stale entries are dropped
}

// DefaultConfig allows a short burst of reconnects, then one every two seconds.
var DefaultConfig = Config{
	PerSecond:       0.5,
	Burst:           5,
	CleanupInterval: 5 * time.Minute,
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // Unix nanoseconds
}

// IPLimiter is a token bucket per remote IP.
type IPLimiter struct {
	limiters sync.Map // map[string]*entry
	config   Config
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once

	allowed  atomic.Uint64
	rejected atomic.Uint64
}

// New creates a limiter and starts its cleanup goroutine. Call Stop when done.
func New(cfg Config) *IPLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultConfig.CleanupInterval
	}
	l := &IPLimiter{
		config:   cfg,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Stop stops the cleanup goroutine. Safe to call more than once.
func (l *IPLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Allow reports whether a new session from ip may start now.
func (l *IPLimiter) Allow(ip string) bool {
	now := l.now()
	if l.limiterFor(ip, now).AllowN(now, 1) {
		l.allowed.Add(1)
		return true
	}
	l.rejected.Add(1)
	return false
}

// Stats returns the number of allowed and rejected calls so far.
func (l *IPLimiter) Stats() (allowed, rejected uint64) {
	return l.allowed.Load(), l.rejected.Load()
}

func (l *IPLimiter) limiterFor(ip string, now time.Time) *rate.Limiter {
	if v, ok := l.limiters.Load(ip); ok {
		e := v.(*entry)
		e.lastSeen.Store(now.UnixNano())
		return e.limiter
	}

	e := &entry{limiter: rate.NewLimiter(rate.Limit(l.config.PerSecond), l.config.Burst)}
	e.lastSeen.Store(now.UnixNano())
	actual, _ := l.limiters.LoadOrStore(ip, e)
	return actual.(*entry).limiter
}

func (l *IPLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

// cleanup drops limiters unused for two cleanup intervals.
func (l *IPLimiter) cleanup() {
	cutoff := l.now().Add(-2 * l.config.CleanupInterval).UnixNano()
	l.limiters.Range(func(key, value any) bool {
		if value.(*entry).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

// HostIP strips the port from a network address. Addresses without a port
// are returned unchanged.
func HostIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	s := addr.String()
	host, _, err := net.SplitHostPort(s)
	if err != nil {
		return s
	}
	return host
}
