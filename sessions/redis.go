package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rohanthewiz/serr"

	"staysearch/metrics"
	"staysearch/state"
)

const redisKeyPrefix = "staysearch:session:"

// RedisStore keeps encoded session state in Redis with a sliding TTL
type RedisStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr, pass string, db int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

// Ping verifies the server is reachable
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.c.Ping(ctx).Err(); err != nil {
		return serr.Wrap(err, "redis ping failed")
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.c.Close()
}

func (r *RedisStore) Load(ctx context.Context, id string) (*state.Home, bool, error) {
	raw, err := r.c.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveSession("redis", "miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, serr.Wrap(err, "failed to load session", "session_id", id)
	}
	home, err := state.Decode(raw)
	if err != nil {
		return nil, false, serr.Wrap(err, "failed to decode session", "session_id", id)
	}
	metrics.ObserveSession("redis", "hit")
	return home, true, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, home *state.Home) error {
	raw, err := state.Encode(home)
	if err != nil {
		return serr.Wrap(err, "failed to encode session", "session_id", id)
	}
	if err = r.c.Set(ctx, redisKeyPrefix+id, raw, r.ttl).Err(); err != nil {
		return serr.Wrap(err, "failed to save session", "session_id", id)
	}
	metrics.ObserveSession("redis", "set")
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.c.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return serr.Wrap(err, "failed to delete session", "session_id", id)
	}
	metrics.ObserveSession("redis", "del")
	return nil
}
