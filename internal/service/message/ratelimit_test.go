package message

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := newRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !limiter.Allow("client") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("client") {
		t.Fatal("request over the limit should be rejected")
	}
}

func TestRateLimiterRejectionDoesNotConsumeSlot(t *testing.T) {
	now := time.Now()
	limiter := newRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.Allow("client")
	limiter.Allow("client")
	// Hammer past the limit; none of these should extend the window.
	for i := 0; i < 10; i++ {
		if limiter.Allow("client") {
			t.Fatal("expected rejection while window is full")
		}
	}

	// Once the first two requests leave the window the client recovers.
	limiter.now = func() time.Time { return now.Add(61 * time.Second) }
	if !limiter.Allow("client") {
		t.Fatal("expected request allowed after the window elapsed")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter := newRateLimiter(1, time.Minute)
	if !limiter.Allow("a") {
		t.Fatal("first request for client a should pass")
	}
	if !limiter.Allow("b") {
		t.Fatal("client b must not share client a's window")
	}
}

func TestRateLimiterStatus(t *testing.T) {
	now := time.Now()
	limiter := newRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.Allow("client")
	status := limiter.Status("client")
	if status.Remaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", status.Remaining)
	}
	if !status.ResetTime.Equal(now.Add(time.Minute)) {
		t.Fatalf("expected reset at first request + window, got %v", status.ResetTime)
	}
}

func TestRateLimiterClear(t *testing.T) {
	limiter := newRateLimiter(1, time.Minute)
	limiter.Allow("client")
	if limiter.Allow("client") {
		t.Fatal("second request should be rejected")
	}
	limiter.Clear("client")
	if !limiter.Allow("client") {
		t.Fatal("expected request allowed after clear")
	}
}
