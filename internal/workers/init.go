package workers

import (
	"context"
	"log/slog"

	"weather-service/internal/cache"
	"weather-service/internal/kafka"
	"weather-service/internal/metrics"
)

// StartAllWorkers starts cache warming when the bundle carries a consumer.
// It returns nil when there is nothing to start.
func StartAllWorkers(
	ctx context.Context,
	store cache.Store,
	kafkaBundle *kafka.KafkaBundle,
	log *slog.Logger,
	m *metrics.Metrics,
) *CacheSyncer {
	if kafkaBundle == nil || kafkaBundle.Consumer == nil {
		return nil
	}

	syncer := NewCacheSyncer(store, WeatherWorkerHandler{}, log, m)
	kafkaBundle.Consumer.Start(ctx, syncer.Sync)
	log.Info("🚀 WeatherSyncer started")
	return syncer
}
