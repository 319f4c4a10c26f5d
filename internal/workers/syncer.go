package workers

import (
	"context"
	"fmt"
	"log/slog"

	"weather-service/internal/cache"
	"weather-service/internal/metrics"
)

// CacheSyncer writes feed records accepted by its handler into the store.
type CacheSyncer struct {
	store   cache.Store
	handler WorkerHandler
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewCacheSyncer(store cache.Store, handler WorkerHandler, log *slog.Logger, m *metrics.Metrics) *CacheSyncer {
	return &CacheSyncer{
		store:   store,
		handler: handler,
		log:     log.With("worker", handler.Type()),
		metrics: m,
	}
}

// Sync matches kafka.Handler.
func (s *CacheSyncer) Sync(ctx context.Context, key, value []byte) error {
	cacheKey, ttl, err := s.handler.Handle(ctx, key, value)
	if err != nil {
		s.metrics.FeedPublished.WithLabelValues("in", "rejected").Inc()
		return err
	}

	if err := s.store.Set(ctx, cacheKey, value, ttl); err != nil {
		s.metrics.FeedPublished.WithLabelValues("in", "error").Inc()
		return fmt.Errorf("cache %s: %w", cacheKey, err)
	}

	s.metrics.FeedPublished.WithLabelValues("in", "ok").Inc()
	s.log.DebugContext(ctx, "Cache warmed from feed", "key", cacheKey, "ttl", ttl)
	return nil
}
