package scheduler

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaseKey = "taskreminder:tick-lease"

// Lease is a short-lived SETNX lease guarding against overlapping ticks
// when more than one scheduler instance runs. Without redis configured the
// lease fails open and concurrent ticks may double-dispatch; that keeps
// the at-least-once delivery tradeoff of a single-instance deployment.
type Lease struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLease connects to redis at addr. An empty addr, or a failed ping,
// leaves the client nil and every Acquire succeeds.
func NewLease(addr, password string, db int, ttl time.Duration) *Lease {
	l := &Lease{ttl: ttl}
	if addr == "" {
		return l
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return l
	}
	l.client = client
	return l
}

func (l *Lease) Acquire(ctx context.Context) bool {
	if l == nil || l.client == nil {
		return true
	}
	ok, err := l.client.SetNX(ctx, leaseKey, 1, l.ttl).Result()
	if err != nil {
		// Redis trouble must not stop reminders; fail open.
		return true
	}
	return ok
}

func (l *Lease) Release(ctx context.Context) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, leaseKey)
}
