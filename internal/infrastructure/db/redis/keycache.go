package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/accessd/accessd/internal/api/metrics"
	"github.com/accessd/accessd/internal/core/domain"
	"github.com/accessd/accessd/internal/core/ports"
)

const defaultCacheTTL = 30 * time.Second

// CachedStore decorates a CredentialStore with a short-lived Redis cache for
// API-key lookups, the hot path of api-key deployments where every request
// triggers a store round trip. Cache errors fail open to the underlying
// store; a cold or broken cache costs latency, never correctness.
//
// Entries expire after ttl, so a revoked key stays usable for at most that
// window. Key format: apikey:<key>
type CachedStore struct {
	inner  ports.CredentialStore
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedStore(inner ports.CredentialStore, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedStore{inner: inner, client: client, ttl: ttl, log: log}
}

func (s *CachedStore) FindByAPIKey(ctx context.Context, key string) (*domain.User, error) {
	timer := time.Now()
	defer func() {
		metrics.StoreLookupDuration.WithLabelValues("api_key").Observe(time.Since(timer).Seconds())
	}()

	cacheKey := fmt.Sprintf("apikey:%s", key)

	raw, err := s.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var u domain.User
		if err := json.Unmarshal(raw, &u); err == nil {
			return &u, nil
		}
		// A corrupt entry falls through to the store and gets rewritten.
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("api key cache read failed; falling through to store")
	}

	user, err := s.inner.FindByAPIKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(user); err == nil {
		if err := s.client.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Msg("api key cache write failed")
		}
	}
	return user, nil
}

func (s *CachedStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	timer := time.Now()
	defer func() {
		metrics.StoreLookupDuration.WithLabelValues("username").Observe(time.Since(timer).Seconds())
	}()
	// Username lookups happen once per login exchange; not worth caching.
	return s.inner.FindByUsername(ctx, username)
}

func (s *CachedStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	timer := time.Now()
	defer func() {
		metrics.StoreLookupDuration.WithLabelValues("id").Observe(time.Since(timer).Seconds())
	}()
	return s.inner.FindByID(ctx, id)
}

func (s *CachedStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.inner.Create(ctx, user)
}
