package utils

import (
	"sync"
	"time"
)

// RateLimiter caps how many commands a user may run inside a rolling
// window. Entries are keyed per user and command.
type RateLimiter struct {
	limits map[string]*userLimit
	max    int
	window time.Duration
	mu     sync.Mutex

	now func() time.Time
}

type userLimit struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter allows max commands per window per (user, command) pair.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limits: make(map[string]*userLimit),
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether the user may run the command now and counts the
// attempt when they may.
func (rl *RateLimiter) Allow(userID, command string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := userID + ":" + command
	now := rl.now()

	limit, exists := rl.limits[key]
	if !exists || now.Sub(limit.windowStart) >= rl.window {
		rl.limits[key] = &userLimit{windowStart: now, count: 1}
		return true
	}

	if limit.count >= rl.max {
		return false
	}
	limit.count++
	return true
}

// RetryAfter returns how long until the user's window resets. Zero means
// the user is not limited.
func (rl *RateLimiter) RetryAfter(userID, command string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limit, exists := rl.limits[userID+":"+command]
	if !exists {
		return 0
	}
	elapsed := rl.now().Sub(limit.windowStart)
	if elapsed >= rl.window || limit.count < rl.max {
		return 0
	}
	return rl.window - elapsed
}
