package service

import (
	"context"
	"sync/atomic"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type MenuItemCache interface {
	Get(key string) (entities.MenuItem, bool)
	Set(key string, value entities.MenuItem)
	Delete(key string)
	Clear()
}

// cachedCatalog serves menu items from cache and collapses concurrent misses
// for the same id into one lookup. Option items always go to the store.
// Entries are dropped through Invalidate and Purge when the catalog changes.
type cachedCatalog struct {
	next  CatalogLookup
	cache MenuItemCache
	group singleflight.Group

	// generation changes on every invalidation; loads started before it are not cached
	generation atomic.Uint64
}

func NewCachedCatalog(next CatalogLookup, cache MenuItemCache) *cachedCatalog {
	return &cachedCatalog{next: next, cache: cache}
}

func (c *cachedCatalog) GetMenuItem(ctx context.Context, id uuid.UUID) (entities.MenuItem, error) {
	key := id.String()
	if item, ok := c.cache.Get(key); ok {
		catalogCacheHits.Inc()
		return item, nil
	}
	catalogCacheMisses.Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		gen := c.generation.Load()
		// shared by every caller waiting on key
		item, err := c.next.GetMenuItem(context.WithoutCancel(ctx), id)
		if err != nil {
			return entities.MenuItem{}, err
		}
		if c.generation.Load() == gen {
			c.cache.Set(key, item)
		}
		return item, nil
	})
	if err != nil {
		return entities.MenuItem{}, err
	}
	return v.(entities.MenuItem), nil
}

// Invalidate drops the cached menu item with the given id.
func (c *cachedCatalog) Invalidate(id uuid.UUID) {
	c.generation.Add(1)
	c.group.Forget(id.String())
	c.cache.Delete(id.String())
	catalogCacheInvalidations.WithLabelValues("item").Inc()
}

// Purge drops every cached menu item.
func (c *cachedCatalog) Purge() {
	c.generation.Add(1)
	c.cache.Clear()
	catalogCacheInvalidations.WithLabelValues("all").Inc()
}

func (c *cachedCatalog) GetOptionItems(ctx context.Context, menuItemID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]entities.OptionItem, error) {
	return c.next.GetOptionItems(ctx, menuItemID, ids)
}
