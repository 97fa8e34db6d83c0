package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("user1", "buy"))
	}
	assert.False(t, rl.Allow("user1", "buy"))

	// Other users and commands have their own windows.
	assert.True(t, rl.Allow("user2", "buy"))
	assert.True(t, rl.Allow("user1", "sell"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	current := time.Now()
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("user1", "buy"))
	assert.False(t, rl.Allow("user1", "buy"))
	assert.Equal(t, time.Minute, rl.RetryAfter("user1", "buy"))

	current = current.Add(time.Minute)
	assert.Zero(t, rl.RetryAfter("user1", "buy"))
	assert.True(t, rl.Allow("user1", "buy"))
}
