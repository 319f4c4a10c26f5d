package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-service/internal/kafka"
)

const shutdownTimeout = 10 * time.Second

// GracefulShutdown blocks until SIGINT/SIGTERM or ctx is done, then stops the
// server and releases the feed and cache connections in that order.
func GracefulShutdown(
	ctx context.Context,
	srv *http.Server,
	cacheConn io.Closer,
	kafkaBundle *kafka.KafkaBundle,
	log *slog.Logger,
) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("🛑 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", "error", err)
	}

	if kafkaBundle != nil {
		if kafkaBundle.Consumer != nil {
			kafkaBundle.Consumer.Stop()
		}
		kafkaBundle.Producer.Close()
	}

	if cacheConn != nil {
		if err := cacheConn.Close(); err != nil {
			log.Error("Redis close error", "error", err)
		}
	}
}
