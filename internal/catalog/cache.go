package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pizzeria-orders/internal/cache"
	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/models"
)

const cacheTTL = 5 * time.Minute

// CachedLookup is a read-through cache in front of another Lookup.
// Misses in the cache fall through to the inner lookup; cache failures
// are logged and never fail the lookup itself.
type CachedLookup struct {
	inner  Lookup
	cache  cache.Cache
	logger *logger.Logger
}

// NewCachedLookup wraps inner with the given cache.
func NewCachedLookup(inner Lookup, c cache.Cache, log *logger.Logger) *CachedLookup {
	return &CachedLookup{inner: inner, cache: c, logger: log}
}

func (l *CachedLookup) FindByName(ctx context.Context, kind models.ItemKind, name string) (*Product, error) {
	key := l.cache.GenerateKey(string(kind), "name", name)
	if product := l.cached(ctx, key); product != nil {
		return product, nil
	}

	product, err := l.inner.FindByName(ctx, kind, name)
	if err != nil || product == nil {
		return product, err
	}

	l.store(ctx, key, product)
	return product, nil
}

func (l *CachedLookup) FindByID(ctx context.Context, kind models.ItemKind, id uuid.UUID) (*Product, error) {
	key := l.cache.GenerateKey(string(kind), "id", id.String())
	if product := l.cached(ctx, key); product != nil {
		return product, nil
	}

	product, err := l.inner.FindByID(ctx, kind, id)
	if err != nil || product == nil {
		return product, err
	}

	l.store(ctx, key, product)
	return product, nil
}

func (l *CachedLookup) cached(ctx context.Context, key string) *Product {
	raw, err := l.cache.Get(ctx, key)
	if err != nil {
		l.logger.Error("cache_get_failed", "Failed to read catalog cache", "", err, map[string]interface{}{"key": key})
		return nil
	}
	if raw == "" {
		return nil
	}

	var product Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		l.logger.Error("cache_decode_failed", "Failed to decode cached product", "", err, map[string]interface{}{"key": key})
		return nil
	}
	return &product
}

func (l *CachedLookup) store(ctx context.Context, key string, product *Product) {
	body, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := l.cache.Set(ctx, key, string(body), cacheTTL); err != nil {
		l.logger.Error("cache_set_failed", "Failed to write catalog cache", "", err, map[string]interface{}{"key": key})
	}
}
