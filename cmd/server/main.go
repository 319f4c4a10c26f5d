package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"weather-service/internal/api"
	"weather-service/internal/bootstrap"
	"weather-service/internal/cache"
	"weather-service/internal/config"
	"weather-service/internal/db"
	"weather-service/internal/kafka"
	"weather-service/internal/logging"
	"weather-service/internal/metrics"
	"weather-service/internal/services"
	"weather-service/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.EnvProd).Error("❌ Invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ------------------------
	// Metrics
	// ------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	// ------------------------
	// Cache
	// ------------------------
	var (
		store     cache.Store
		cacheConn io.Closer
	)
	switch cfg.CacheDriver {
	case config.DriverMemory:
		store = cache.NewMemoryStore()
		log.Warn("Using in-process cache, entries are not shared between instances")
	default:
		redisClient, err := db.ConnectRedis(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Error("❌ Redis connection failed", "error", err)
			os.Exit(1)
		}
		store = cache.NewRedisStore(redisClient, cfg.CacheTimeout)
		cacheConn = redisClient
	}

	// ------------------------
	// Weather provider
	// ------------------------
	client, err := api.NewOpenWeatherClient(api.Config{
		BaseURL: cfg.WeatherAPIURL,
		APIKey:  cfg.WeatherAPIKey,
		Timeout: cfg.HTTPTimeout,
	}, log)
	if err != nil {
		log.Error("❌ Weather client init failed", "error", err)
		os.Exit(1)
	}

	// ------------------------
	// Kafka
	// ------------------------
	kafkaBundle, err := kafka.InitKafka(cfg, log, m)
	if err != nil {
		log.Error("❌ Kafka init failed", "error", err)
		os.Exit(1)
	}
	opts := services.WeatherOptions{CorruptAsMiss: cfg.CacheCorruptAsMiss}
	if kafkaBundle != nil {
		opts.Publisher = kafkaBundle.Producer
		workers.StartAllWorkers(ctx, store, kafkaBundle, log, m)
	}

	// ------------------------
	// Weather Service + Router
	// ------------------------
	weatherService := services.NewWeatherService(client, store, log, m, opts)
	router := bootstrap.InitRoutes(bootstrap.InitHandlers(weatherService, store, log), reg, log)

	// ------------------------
	// Server
	// ------------------------
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("🚀 Server started", "port", cfg.Port, "env", cfg.Env, "cache", cfg.CacheDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", "error", err)
			cancel()
		}
	}()

	bootstrap.GracefulShutdown(ctx, srv, cacheConn, kafkaBundle, log)
}
