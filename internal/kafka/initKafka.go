package kafka

import (
	"log/slog"

	"weather-service/internal/config"
	"weather-service/internal/metrics"
)

const SyncerGroup = "weather-cache-syncer"

type KafkaBundle struct {
	Producer *Producer
	// Consumer is nil unless cache warming is on.
	Consumer *Consumer
}

// InitKafka returns nil when no brokers are configured.
func InitKafka(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*KafkaBundle, error) {
	if !cfg.FeedEnabled() {
		return nil, nil
	}

	producer, err := NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log, m)
	if err != nil {
		return nil, err
	}
	bundle := &KafkaBundle{Producer: producer}

	if cfg.KafkaWarmCache {
		consumer, err := NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, SyncerGroup, log)
		if err != nil {
			producer.Close()
			return nil, err
		}
		bundle.Consumer = consumer
	}
	return bundle, nil
}
