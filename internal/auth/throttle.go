package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttlePrefix = "signin:failures:"

// ThrottleClient is the subset of redis commands the throttle issues.
// *redis.Client satisfies it.
type ThrottleClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SigninThrottle counts failed signin attempts per email in Redis and locks
// the email out once the configured threshold is reached.
type SigninThrottle struct {
	client  ThrottleClient
	max     int
	lockout time.Duration
}

// NewSigninThrottle builds a throttle. A nil client disables throttling.
func NewSigninThrottle(client ThrottleClient, max int, lockout time.Duration) *SigninThrottle {
	return &SigninThrottle{client: client, max: max, lockout: lockout}
}

// Blocked reports whether the email has exceeded the failure threshold.
func (t *SigninThrottle) Blocked(ctx context.Context, email string) bool {
	if t == nil || t.client == nil || t.max <= 0 {
		return false
	}
	count, err := t.client.Get(ctx, throttlePrefix+email).Int()
	if err != nil {
		// Redis unavailable falls open rather than locking everyone out.
		return false
	}
	return count >= t.max
}

// RecordFailure increments the failure counter and refreshes the lockout TTL.
func (t *SigninThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil || t.client == nil {
		return
	}
	key := throttlePrefix + email
	if err := t.client.Incr(ctx, key).Err(); err != nil {
		return
	}
	t.client.Expire(ctx, key, t.lockout)
}

// Reset clears the failure counter after a successful signin.
func (t *SigninThrottle) Reset(ctx context.Context, email string) {
	if t == nil || t.client == nil {
		return
	}
	t.client.Del(ctx, throttlePrefix+email)
}
