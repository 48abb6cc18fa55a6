package storage

import (
	"context"
	"errors"
	"time"

	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/rs/zerolog/log"
)

// Durable adapts a SnapshotRepository to the non-failing Storage port. Every
// call runs under its own timeout.
type Durable struct {
	repo    port.SnapshotRepository
	timeout time.Duration
}

func NewDurable(repo port.SnapshotRepository, timeout time.Duration) *Durable {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Durable{
		repo:    repo,
		timeout: timeout,
	}
}

func (s *Durable) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("durable storage: get failed")
		}
		return nil, false
	}

	return v, true
}

func (s *Durable) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Put(ctx, key, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("durable storage: put failed")
	}
}

func (s *Durable) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.repo.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("durable storage: delete failed")
	}
}
