package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(60) // 1 req/s, burst of 10

	for i := 0; i < 10; i++ {
		assert.True(t, rl.allow("10.0.0.1"), "request %d should be within burst", i)
	}
	assert.False(t, rl.allow("10.0.0.1"), "burst exhausted")
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(6) // burst of 1

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"), "a second client has its own bucket")
}

func TestRateLimiterMinimumBurst(t *testing.T) {
	rl := NewRateLimiter(1)
	assert.Equal(t, 1, rl.burst)
}
