package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backend/models"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(mr.Addr(), "", 0)
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	stored := []models.PackageView{{ID: 1, Title: "Bariloche"}}
	cache.Set(ctx, "catalog:packages", stored)

	var got []models.PackageView
	require.True(t, cache.Get(ctx, "catalog:packages", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Bariloche", got[0].Title)
}

func TestCacheMiss(t *testing.T) {
	cache := newTestCache(t)

	var got []models.PackageView
	assert.False(t, cache.Get(context.Background(), "catalog:packages", &got))
}

func TestCacheInvalidateCatalog(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "catalog:packages", []int{1})
	cache.Set(ctx, "catalog:promoted", []int{2})
	cache.Set(ctx, "other:key", []int{3})

	cache.InvalidateCatalog(ctx)

	var got []int
	assert.False(t, cache.Get(ctx, "catalog:packages", &got))
	assert.False(t, cache.Get(ctx, "catalog:promoted", &got))
	assert.True(t, cache.Get(ctx, "other:key", &got))
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	cache.Set(ctx, "k", 1)
	cache.InvalidateCatalog(ctx)

	var got int
	assert.False(t, cache.Get(ctx, "k", &got))
}

func TestCatalogServiceUsesCache(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	svc := NewCatalogService(db, cache)
	ctx := context.Background()

	createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	views, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// A row inserted behind the cache's back stays invisible until an
	// admin mutation invalidates.
	require.NoError(t, db.Create(&models.Package{
		Title: "t2", Description: "d", Price: "1", Image: "i", Category: "c",
	}).Error)

	views, err = svc.ListPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	cache.InvalidateCatalog(ctx)
	views, err = svc.ListPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
