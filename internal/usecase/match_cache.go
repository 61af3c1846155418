package usecase

import (
	"context"
	"time"
)

// MatchCache caches the latest ranked result per job. Implementations
// must degrade gracefully when the backend is unavailable.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
