package redisstore

import (
	"context"
	"time"

	"commodities-etl/internal/application"

	"github.com/redis/go-redis/v9"
)

var _ application.RunLock = (*RunLock)(nil)

// releaseScript deletes the key only while it still belongs to the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

type RunLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *RunLock {
	return &RunLock{Client: client, TTL: ttl}
}

func (l *RunLock) TryAcquire(ctx context.Context, key, owner string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, key, owner, l.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (l *RunLock) Release(ctx context.Context, key, owner string) error {
	return releaseScript.Run(ctx, l.Client, []string{key}, owner).Err()
}
