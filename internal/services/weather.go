package services

import (
	"log/slog"
	"time"

	"weather-service/internal/cache"
	"weather-service/internal/metrics"
	"weather-service/internal/models"
)

// WeatherCacheTTL is how long a provider response is served from cache.
const WeatherCacheTTL = 10 * time.Minute

type WeatherService = CacheService[models.WeatherQuery, models.WeatherResult]

type WeatherOptions struct {
	CorruptAsMiss bool
	Publisher     Publisher
}

// NewWeatherService builds the read-through weather lookup. Call Get on the
// result for current conditions at a coordinate.
func NewWeatherService(
	client WeatherClient,
	store cache.Store,
	log *slog.Logger,
	m *metrics.Metrics,
	opts WeatherOptions,
) *WeatherService {
	return NewCacheService[models.WeatherQuery, models.WeatherResult](
		store,
		NewWeatherFetcher(client),
		log,
		m,
		Options{
			TTL:           WeatherCacheTTL,
			CorruptAsMiss: opts.CorruptAsMiss,
			Publisher:     opts.Publisher,
		},
	)
}
