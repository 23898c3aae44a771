package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "session:"

// RedisStore keeps session tokens in Redis with a native TTL, so
// validity survives process restarts and is shared across instances.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.rdb.Set(ctx, keyPrefix+token, createdAt, s.ttl).Err(); err != nil {
		log.Error().Err(err).Msg("failed to store session in redis")
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Validate(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to check session in redis")
		return false, err
	}
	return n == 1, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		log.Error().Err(err).Msg("failed to delete session from redis")
		return err
	}
	return nil
}
