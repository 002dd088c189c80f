package domain

import (
	"context"
	"time"
)

// DictionarySource resolves a locale to its complete string bundle.
// Requesting a locale outside the closed set is a programming error and is
// rejected with an error rather than handled as a recoverable condition.
type DictionarySource interface {
	Load(ctx context.Context, loc Locale) (Dictionary, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
