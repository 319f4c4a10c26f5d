package db

import (
	"context"
	"log/slog"
	"time"

	"weather-service/internal/models"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// ConnectRedis parses redisURL and pings the server until it answers or the
// attempts run out. Extra retry options override the defaults.
func ConnectRedis(ctx context.Context, redisURL string, log *slog.Logger, opts ...retry.Option) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, &models.ConfigError{Key: "REDIS_URL", Reason: err.Error()}
	}

	client := redis.NewClient(opt)

	retryOpts := append([]retry.Option{
		retry.Context(ctx),
		retry.Attempts(10),
		retry.Delay(3 * time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WarnContext(ctx, "Redis not ready yet", "attempt", n+1, "addr", opt.Addr, "error", err)
		}),
	}, opts...)

	err = retry.Do(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}, retryOpts...)
	if err != nil {
		_ = client.Close()
		return nil, &models.TransportError{Op: "redis PING", Target: opt.Addr, Err: err}
	}

	log.InfoContext(ctx, "Redis connected", "addr", opt.Addr, "db", opt.DB)
	return client, nil
}
