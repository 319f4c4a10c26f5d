package workers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-service/internal/models"
	"weather-service/internal/services"
)

type WeatherWorkerHandler struct{}

func (WeatherWorkerHandler) Type() string {
	return "weather"
}

// Handle accepts records produced by the weather service: key is a weather
// cache key and value is the raw provider payload.
func (WeatherWorkerHandler) Handle(_ context.Context, key, value []byte) (string, time.Duration, error) {
	cacheKey := string(key)
	if !strings.HasPrefix(cacheKey, services.WeatherKeyPrefix) {
		return "", 0, fmt.Errorf("unexpected key %q", cacheKey)
	}
	if _, err := models.ParseWeatherResult(value); err != nil {
		return "", 0, &models.DecodeError{Source: models.SourceUpstream, Err: err}
	}
	return cacheKey, services.WeatherCacheTTL, nil
}
