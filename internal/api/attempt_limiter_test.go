package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksInsideWindow(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(2, time.Hour)
	key := "127.0.0.1|ana@example.com"
	now := time.Now().UTC()

	limiter.recordFailure(key, now.Add(-2*time.Hour))
	limiter.recordFailure(key, now.Add(-90*time.Minute))
	if limiter.blocked(key, now) {
		t.Fatal("expected failures outside the window to be pruned")
	}

	limiter.recordFailure(key, now.Add(-10*time.Minute))
	if limiter.blocked(key, now) {
		t.Fatal("expected a single recent failure to stay under the limit")
	}
	limiter.recordFailure(key, now.Add(-5*time.Minute))
	if !limiter.blocked(key, now) {
		t.Fatal("expected two recent failures to reach the limit")
	}
	if limiter.blocked("127.0.0.1|bia@example.com", now) {
		t.Fatal("expected other keys to stay unaffected")
	}

	limiter.clear(key)
	if limiter.blocked(key, now) {
		t.Fatal("expected no failures after clear")
	}
}
