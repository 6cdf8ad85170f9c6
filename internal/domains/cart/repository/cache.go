package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/pkg/cache"

	"github.com/rs/zerolog/log"
)

type cacheRepository struct {
	store  cache.Cache
	prefix string
	ttl    time.Duration
}

// NewCacheRepository stores carts under "<prefix>:<session id>".
// ttl is refreshed on every write.
func NewCacheRepository(store cache.Cache, prefix string, ttl time.Duration) Repository {
	return &cacheRepository{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *cacheRepository) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

func (r *cacheRepository) Load(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	found, err := r.store.Get(ctx, r.key(sessionID), &items)
	if err != nil {
		// An undecodable snapshot is dropped, the session starts over
		if errors.Is(err, cache.ErrDecode) {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("Discarding unreadable cart")
			return []model.CartItem{}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found || items == nil {
		return []model.CartItem{}, nil
	}
	return items, nil
}

func (r *cacheRepository) Save(ctx context.Context, sessionID string, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	if err := r.store.Set(ctx, r.key(sessionID), items, r.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *cacheRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, r.key(sessionID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
