package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"casa_schuck/internal/app"
	"casa_schuck/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	loads int
	err   error
}

func (f *fakeSource) Load(ctx context.Context, loc domain.Locale) (domain.Dictionary, error) {
	f.loads++
	if f.err != nil {
		return domain.Dictionary{}, f.err
	}
	return domain.Dictionary{
		Locale: loc,
		Meta:   domain.MetaStrings{Title: "Casa Schuck (" + string(loc) + ")"},
	}, nil
}

type fakeCache struct {
	store map[string]domain.Dictionary
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.Dictionary); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string]domain.Dictionary{}
	}
	c.store[key] = v.(domain.Dictionary)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestGet_CacheMissThenHit(t *testing.T) {
	src := &fakeSource{}
	cache := &fakeCache{}
	svc := app.NewDictionaryService(src, cache, 10*time.Minute)

	d, err := svc.Get(context.Background(), domain.LocaleES)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Locale != domain.LocaleES || d.Meta.Title == "" {
		t.Fatalf("unexpected dictionary: %+v", d)
	}
	if src.loads != 1 {
		t.Fatalf("expected 1 load, got %d", src.loads)
	}

	// Second read must come from the cache, not the source.
	if _, err := svc.Get(context.Background(), domain.LocaleES); err != nil {
		t.Fatalf("err: %v", err)
	}
	if src.loads != 1 {
		t.Fatalf("expected cached read, source loaded %d times", src.loads)
	}
}

func TestGet_SourceErrorPropagates(t *testing.T) {
	src := &fakeSource{err: errors.New("bundle corrupt")}
	svc := app.NewDictionaryService(src, &fakeCache{}, time.Minute)

	if _, err := svc.Get(context.Background(), domain.LocaleEN); err == nil {
		t.Fatal("expected error from source")
	}
}

func TestInvalidate_ForcesReload(t *testing.T) {
	src := &fakeSource{}
	cache := &fakeCache{}
	svc := app.NewDictionaryService(src, cache, time.Minute)

	if _, err := svc.Get(context.Background(), domain.LocaleEN); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := svc.Invalidate(context.Background(), domain.LocaleEN); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := svc.Get(context.Background(), domain.LocaleEN); err != nil {
		t.Fatalf("err: %v", err)
	}
	if src.loads != 2 {
		t.Fatalf("expected reload after invalidate, got %d loads", src.loads)
	}
}
