package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	mocks "github.com/SergeyBogomolovv/restaurant-pos/internal/service/mocks"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedCatalog_GetMenuItem(t *testing.T) {
	type MockBehavior func(next *mocks.MockCatalogLookup, c *mocks.MockMenuItemCache, item entities.MenuItem)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(next *mocks.MockCatalogLookup, c *mocks.MockMenuItemCache, item entities.MenuItem) {
				c.EXPECT().Get(item.ID.String()).Return(item, true)
			},
		},
		{
			name: "cache miss",
			mockBehavior: func(next *mocks.MockCatalogLookup, c *mocks.MockMenuItemCache, item entities.MenuItem) {
				c.EXPECT().Get(item.ID.String()).Return(entities.MenuItem{}, false)
				next.EXPECT().GetMenuItem(mock.Anything, item.ID).Return(item, nil).Once()
				c.EXPECT().Set(item.ID.String(), item).Return().Once()
			},
		},
		{
			name: "errors are not cached",
			mockBehavior: func(next *mocks.MockCatalogLookup, c *mocks.MockMenuItemCache, item entities.MenuItem) {
				c.EXPECT().Get(item.ID.String()).Return(entities.MenuItem{}, false)
				next.EXPECT().GetMenuItem(mock.Anything, item.ID).Return(entities.MenuItem{}, entities.ErrMenuItemNotFound).Once()
			},
			wantErr: entities.ErrMenuItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := mocks.NewMockCatalogLookup(t)
			c := mocks.NewMockMenuItemCache(t)
			item := menuItem("42")
			tc.mockBehavior(next, c, item)

			catalog := service.NewCachedCatalog(next, c)
			got, err := catalog.GetMenuItem(context.Background(), item.ID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, item, got)
		})
	}
}

func TestCachedCatalog_WithLRU(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	item := menuItem("42")
	next.EXPECT().GetMenuItem(mock.Anything, item.ID).Return(item, nil).Once()

	catalog := service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))
	for range 3 {
		got, err := catalog.GetMenuItem(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	}
}

func TestCachedCatalog_GetOptionItems(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	menuID, optID := uuid.New(), uuid.New()
	ids := []uuid.UUID{optID}
	next.EXPECT().GetOptionItems(mock.Anything, menuID, ids).Return(nil, errors.New("boom")).Once()

	catalog := service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))
	_, err := catalog.GetOptionItems(context.Background(), menuID, ids)
	assert.EqualError(t, err, "boom")
}

func TestCachedCatalog_Invalidate(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	inStock := menuItem("50")
	soldOut := inStock
	soldOut.PriceDineIn = decimal.RequireFromString("70")
	soldOut.IsOutOfStock = true

	next.EXPECT().GetMenuItem(mock.Anything, inStock.ID).Return(inStock, nil).Once()
	next.EXPECT().GetMenuItem(mock.Anything, inStock.ID).Return(soldOut, nil).Once()

	catalog := service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))
	now := time.Now()

	got, err := catalog.GetMenuItem(context.Background(), inStock.ID)
	require.NoError(t, err)
	_, err = entities.NewOrderItem(uuid.New(), entities.OrderTypeDineIn, got, 1, "", nil, nil, now)
	require.NoError(t, err)

	catalog.Invalidate(inStock.ID)

	got, err = catalog.GetMenuItem(context.Background(), inStock.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOutOfStock)
	assert.Equal(t, "70", got.PriceDineIn.String())
	_, err = entities.NewOrderItem(uuid.New(), entities.OrderTypeDineIn, got, 1, "", nil, nil, now)
	assert.ErrorIs(t, err, entities.ErrMenuItemOutOfStock)
}

func TestCachedCatalog_Purge(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	a, b := menuItem("10"), menuItem("20")
	next.EXPECT().GetMenuItem(mock.Anything, a.ID).Return(a, nil).Twice()
	next.EXPECT().GetMenuItem(mock.Anything, b.ID).Return(b, nil).Twice()

	catalog := service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))
	for range 2 {
		for _, id := range []uuid.UUID{a.ID, b.ID, a.ID} {
			_, err := catalog.GetMenuItem(context.Background(), id)
			require.NoError(t, err)
		}
		catalog.Purge()
	}
}

func TestCachedCatalog_StaleLoadIsNotCached(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	old := menuItem("50")
	fresh := old
	fresh.IsOutOfStock = true

	var catalog interface {
		GetMenuItem(ctx context.Context, id uuid.UUID) (entities.MenuItem, error)
		Invalidate(id uuid.UUID)
	}
	// the item changes while the first lookup is still reading it
	next.EXPECT().GetMenuItem(mock.Anything, old.ID).
		Run(func(context.Context, uuid.UUID) { catalog.Invalidate(old.ID) }).
		Return(old, nil).Once()
	next.EXPECT().GetMenuItem(mock.Anything, old.ID).Return(fresh, nil).Once()

	catalog = service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))

	got, err := catalog.GetMenuItem(context.Background(), old.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOutOfStock)

	got, err = catalog.GetMenuItem(context.Background(), old.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOutOfStock)
}

func TestCachedCatalog_SharedLookupIgnoresCallerCancel(t *testing.T) {
	next := mocks.NewMockCatalogLookup(t)
	item := menuItem("42")
	next.EXPECT().GetMenuItem(mock.Anything, item.ID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (entities.MenuItem, error) {
			if err := ctx.Err(); err != nil {
				return entities.MenuItem{}, err
			}
			return item, nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := service.NewCachedCatalog(next, cache.NewLRUCache[entities.MenuItem](16, time.Minute))
	got, err := catalog.GetMenuItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
}
