package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTimeout is how long a client's limiter is kept after its
// last request.
const DefaultLimiterIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key (normally the remote IP) gets its own limiter with a
// burst of 1. Limiters idle for longer than the idle timeout are evicted.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       float64
	idle      time.Duration
	lastSweep time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterOption configures a ClientLimiter.
type LimiterOption func(*ClientLimiter)

// WithIdleTimeout sets how long an unused client limiter is retained.
func WithIdleTimeout(d time.Duration) LimiterOption {
	return func(l *ClientLimiter) {
		if d > 0 {
			l.idle = d
		}
	}
}

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second per client.
func NewClientLimiter(rps float64, opts ...LimiterOption) *ClientLimiter {
	l := &ClientLimiter{
		clients:   make(map[string]*clientEntry),
		rps:       rps,
		idle:      DefaultLimiterIdleTimeout,
		lastSweep: time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), 1)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients not seen within the idle timeout. Caller holds mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}
