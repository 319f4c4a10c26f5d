package services

import "context"

// Fetcher is the source side of a read-through cache. Fetch returns the raw
// payload exactly as it will be stored, Decode turns stored or fetched bytes
// into T.
type Fetcher[Q, T any] interface {
	CacheKey(q Q) string
	Fetch(ctx context.Context, q Q) ([]byte, error)
	Decode(data []byte) (*T, error)
}

// Publisher receives every freshly fetched payload. Implementations must not block.
type Publisher interface {
	PublishAsync(key, value []byte)
}
