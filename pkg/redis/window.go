package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KEYS[1] = counter key, ARGV[1] = window in seconds.
// Returns {count, ttl}.
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// WindowCounter counts hits per key in fixed windows stored in Redis.
type WindowCounter struct {
	client redis.Scripter
}

func NewWindowCounter(client redis.Scripter) *WindowCounter {
	return &WindowCounter{client: client}
}

// Increment records one hit for key and returns the hit count in the current
// window together with the moment the window resets.
func (w *WindowCounter) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	if w == nil || w.client == nil {
		return 0, time.Time{}, errors.New("redis: client not initialized")
	}

	seconds := max(int(window.Seconds()), 1)
	result, err := windowScript.Run(ctx, w.client, []string{key}, seconds).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis window increment: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, errors.New("redis window increment: unexpected result")
	}

	ttl := max(result[1], 0)
	return int(result[0]), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
