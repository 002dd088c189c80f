package app

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"casa_schuck/internal/domain"
)

// DictionaryService memoizes loaded string bundles. Loading is cheap enough
// to recompute redundantly, so the cache is best-effort: a cache failure
// never fails the request, and concurrent loads for the same locale collapse
// into one.
type DictionaryService struct {
	src      domain.DictionarySource
	cache    domain.Cache
	cacheTTL time.Duration
	sf       singleflight.Group
}

func NewDictionaryService(src domain.DictionarySource, c domain.Cache, ttl time.Duration) *DictionaryService {
	return &DictionaryService{src: src, cache: c, cacheTTL: ttl}
}

func (s *DictionaryService) Get(ctx context.Context, loc domain.Locale) (domain.Dictionary, error) {
	key := "dict:" + string(loc)
	var d domain.Dictionary
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		return d, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		loaded, err := s.src.Load(ctx, loc)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, key, loaded, s.cacheTTL)
		return loaded, nil
	})
	if err != nil {
		return domain.Dictionary{}, err
	}
	return v.(domain.Dictionary), nil
}

// Invalidate drops the cached bundle for loc, forcing a reload on next Get.
func (s *DictionaryService) Invalidate(ctx context.Context, loc domain.Locale) error {
	return s.cache.Del(ctx, "dict:"+string(loc))
}
