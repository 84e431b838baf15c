package internal

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterMaxEntries = 10000
	limiterIdleTTL    = 10 * time.Minute
)

// Limiter is a per-client token bucket. Zero rate disables limiting.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    rate.Limit
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows burst requests at once, then one request per interval for each client.
func NewLimiter(interval time.Duration, burst int) *Limiter {
	l := &Limiter{limiters: make(map[string]*limiterEntry), burst: burst, now: time.Now}
	if interval > 0 {
		l.every = rate.Every(interval)
	}
	if l.burst < 1 {
		l.burst = 1
	}
	return l
}

// Allow reports whether the client may proceed now.
func (l *Limiter) Allow(clientID string) bool {
	if l == nil || l.every == 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.limiters[clientID]
	if !ok {
		if len(l.limiters) >= limiterMaxEntries {
			l.cleanup(now)
		}
		e = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[clientID] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// cleanup removes entries idle for longer than limiterIdleTTL. Must be called with l.mu held.
func (l *Limiter) cleanup(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL)
	for id, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, id)
		}
	}
}
