package bootstrap

import (
	"log/slog"

	"weather-service/internal/cache"
	"weather-service/internal/handlers"
	"weather-service/internal/services"
)

type HandlersBundle struct {
	WeatherHandler *handlers.WeatherHandler
	HealthHandler  *handlers.HealthHandler
}

func InitHandlers(weatherService *services.WeatherService, store cache.Store, log *slog.Logger) *HandlersBundle {
	return &HandlersBundle{
		WeatherHandler: handlers.NewWeatherHandler(weatherService, log),
		HealthHandler:  handlers.NewHealthHandler(store, log),
	}
}
