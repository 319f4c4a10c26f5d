package cache

import (
	"context"
	"time"
)

// DefaultOpTimeout bounds a single store call when the caller's context has no deadline.
const DefaultOpTimeout = 2 * time.Second

// Store is a key-value store with per-key expiration.
//
// Get reports (nil, false, nil) on a miss. A connectivity problem comes back
// as a *models.TransportError so callers can tell it apart from a miss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}
