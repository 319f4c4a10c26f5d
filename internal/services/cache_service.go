package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"weather-service/internal/cache"
	"weather-service/internal/metrics"
	"weather-service/internal/models"
)

type Options struct {
	TTL time.Duration
	// CorruptAsMiss refetches when a cached payload fails to decode instead
	// of returning a DecodeError.
	CorruptAsMiss bool
	Publisher     Publisher
}

// CacheService serves T from the store when present, otherwise fetches it,
// stores the raw payload with TTL and returns it. Store failures never fail
// a lookup. Concurrent misses on one key each go to the source.
type CacheService[Q, T any] struct {
	store   cache.Store
	fetcher Fetcher[Q, T]
	log     *slog.Logger
	metrics *metrics.Metrics
	opts    Options
}

func NewCacheService[Q, T any](
	store cache.Store,
	fetcher Fetcher[Q, T],
	log *slog.Logger,
	m *metrics.Metrics,
	opts Options,
) *CacheService[Q, T] {
	return &CacheService[Q, T]{
		store:   store,
		fetcher: fetcher,
		log:     log,
		metrics: m,
		opts:    opts,
	}
}

func (s *CacheService[Q, T]) Get(ctx context.Context, q Q) (*T, error) {
	key := s.fetcher.CacheKey(q)
	log := s.log.With("key", key)

	data, found, err := s.store.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.CacheLookups.WithLabelValues(metrics.LookupError).Inc()
		log.WarnContext(ctx, "Cache read failed, falling through to provider", "error", err)
	case found:
		result, decErr := s.fetcher.Decode(data)
		if decErr == nil {
			s.metrics.CacheLookups.WithLabelValues(metrics.LookupHit).Inc()
			log.DebugContext(ctx, "Cache HIT")
			return result, nil
		}
		s.metrics.CacheLookups.WithLabelValues(metrics.LookupCorrupt).Inc()
		if !s.opts.CorruptAsMiss {
			log.ErrorContext(ctx, "Corrupt cache entry", "error", decErr)
			return nil, &models.DecodeError{Source: models.SourceCache, Err: decErr}
		}
		log.WarnContext(ctx, "Corrupt cache entry, refetching", "error", decErr)
	default:
		s.metrics.CacheLookups.WithLabelValues(metrics.LookupMiss).Inc()
		log.DebugContext(ctx, "Cache MISS")
	}

	start := time.Now()
	raw, err := s.fetcher.Fetch(ctx, q)
	s.metrics.UpstreamSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamErrors.WithLabelValues(errorKind(err)).Inc()
		return nil, err
	}

	result, err := s.fetcher.Decode(raw)
	if err != nil {
		s.metrics.UpstreamErrors.WithLabelValues("decode").Inc()
		log.WarnContext(ctx, "Provider returned an undecodable body", "error", err)
		return nil, &models.DecodeError{Source: models.SourceUpstream, Err: err}
	}

	if err := s.store.Set(ctx, key, raw, s.opts.TTL); err != nil {
		s.metrics.CacheWrites.WithLabelValues("error").Inc()
		log.WarnContext(ctx, "Cache write failed", "error", err)
	} else {
		s.metrics.CacheWrites.WithLabelValues("ok").Inc()
		log.DebugContext(ctx, "Cache updated", "ttl", s.opts.TTL)
	}

	if s.opts.Publisher != nil {
		s.opts.Publisher.PublishAsync([]byte(key), raw)
	}

	return result, nil
}

func errorKind(err error) string {
	var (
		transport *models.TransportError
		upstream  *models.UpstreamError
	)
	switch {
	case errors.As(err, &upstream):
		return "upstream"
	case errors.As(err, &transport):
		return "transport"
	default:
		return "other"
	}
}
