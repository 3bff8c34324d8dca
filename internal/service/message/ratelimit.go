package message

import (
	"sync"
	"time"
)

// rateLimiter is a per-client sliding window. A rejected request does not
// consume a slot, so a client hammering the endpoint recovers as soon as the
// oldest allowed request leaves the window.
type rateLimiter struct {
	maxRequests int
	window      time.Duration

	mu      sync.Mutex
	clients map[string][]time.Time
	now     func() time.Time
}

func newRateLimiter(maxRequests int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		maxRequests: maxRequests,
		window:      window,
		clients:     make(map[string][]time.Time),
		now:         time.Now,
	}
}

// Allow records the request if the client is under the limit and reports
// whether it may proceed.
func (r *rateLimiter) Allow(clientID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	recent := r.prune(clientID)
	if len(recent) >= r.maxRequests {
		r.clients[clientID] = recent
		return false
	}
	r.clients[clientID] = append(recent, r.now())
	return true
}

// RateLimitStatus describes a client's remaining budget.
type RateLimitStatus struct {
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"resetTime"`
}

// Status reports the remaining requests and when the window fully resets.
func (r *rateLimiter) Status(clientID string) RateLimitStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	recent := r.prune(clientID)
	r.clients[clientID] = recent

	status := RateLimitStatus{
		Remaining: r.maxRequests - len(recent),
		ResetTime: r.now().Add(r.window),
	}
	if len(recent) > 0 {
		status.ResetTime = recent[0].Add(r.window)
	}
	return status
}

// Clear forgets a client's history.
func (r *rateLimiter) Clear(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, clientID)
}

// prune drops timestamps older than the window. Caller holds the lock.
func (r *rateLimiter) prune(clientID string) []time.Time {
	cutoff := r.now().Add(-r.window)
	recent := r.clients[clientID][:0:len(r.clients[clientID])]
	for _, t := range r.clients[clientID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) == 0 {
		delete(r.clients, clientID)
		return nil
	}
	return recent
}
