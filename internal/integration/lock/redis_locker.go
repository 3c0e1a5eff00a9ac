// Package lock provides cross-process locks for maintenance work.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sft-api/backend/internal/application/adapter"
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by another process is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker implements the adapter.Locker interface with SET NX PX.
type redisLocker struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisLocker creates a new Redis-backed locker. Keys are namespaced with prefix.
func NewRedisLocker(client redis.UniversalClient, prefix string) adapter.Locker {
	return &redisLocker{
		client: client,
		prefix: prefix,
	}
}

// TryLock attempts to take key for ttl.
func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (adapter.Unlocker, bool, error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", fullKey, err)
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", fullKey, err)
		}
		return nil
	}
	return unlock, true, nil
}

// NewRedisClient opens a Redis client from a redis:// URL. password and db
// override the URL when set.
func NewRedisClient(ctx context.Context, url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db > 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
