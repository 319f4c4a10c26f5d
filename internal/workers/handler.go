package workers

import (
	"context"
	"time"
)

// WorkerHandler validates a feed record and returns the cache key and TTL
// it should be stored under.
type WorkerHandler interface {
	Type() string
	Handle(ctx context.Context, key, value []byte) (string, time.Duration, error)
}
