package services

import (
	"context"
	"strconv"

	"weather-service/internal/models"
)

// WeatherKeyPrefix starts every weather cache key.
const WeatherKeyPrefix = "weather:"

// WeatherClient is satisfied by *api.OpenWeatherClient.
type WeatherClient interface {
	CurrentWeather(ctx context.Context, q models.WeatherQuery) ([]byte, error)
}

type WeatherFetcher struct {
	client WeatherClient
}

func NewWeatherFetcher(client WeatherClient) WeatherFetcher {
	return WeatherFetcher{client: client}
}

func (WeatherFetcher) CacheKey(q models.WeatherQuery) string {
	return WeatherCacheKey(q)
}

func (f WeatherFetcher) Fetch(ctx context.Context, q models.WeatherQuery) ([]byte, error) {
	return f.client.CurrentWeather(ctx, q)
}

func (WeatherFetcher) Decode(data []byte) (*models.WeatherResult, error) {
	return models.ParseWeatherResult(data)
}

// WeatherCacheKey renders weather:<lat>:<lon>:<units>. Floats use the shortest
// exact form so equal values always give equal keys.
func WeatherCacheKey(q models.WeatherQuery) string {
	return WeatherKeyPrefix +
		strconv.FormatFloat(q.Latitude, 'f', -1, 64) + ":" +
		strconv.FormatFloat(q.Longitude, 'f', -1, 64) + ":" +
		string(q.Units)
}
