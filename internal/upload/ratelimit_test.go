package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowWithinBudget(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		ok, wait := l.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should be allowed", i+1)
		assert.Zero(t, wait)
	}

	ok, wait := l.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, time.Minute)
}

func TestRateLimiter_IndependentKeys(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	defer l.Stop()

	ok, _ := l.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.Allow("10.0.0.1")
	assert.False(t, ok)

	// A different key has its own budget.
	ok, _ = l.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	l := NewRateLimiter(1, 10*time.Millisecond)
	defer l.Stop()

	ok, _ := l.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.Allow("10.0.0.1")
	assert.False(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, _ = l.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_CleanupRemovesStaleBuckets(t *testing.T) {
	l := NewRateLimiter(5, 10*time.Millisecond)
	defer l.Stop()

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")

	time.Sleep(20 * time.Millisecond)
	l.cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.buckets)
}
