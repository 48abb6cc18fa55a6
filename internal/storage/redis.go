package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 500 * time.Millisecond

// Redis stores snapshots as plain string values under prefix+key, without
// expiry. Failed reads are reported as absent keys and failed writes are
// logged.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
}

func NewRedis(client redis.UniversalClient, prefix string, timeout time.Duration) *Redis {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Redis{
		client:  client,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (s *Redis) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("redis storage: get failed")
		}
		return nil, false
	}

	return v, true
}

func (s *Redis) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis storage: set failed")
	}
}

func (s *Redis) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis storage: delete failed")
	}
}
