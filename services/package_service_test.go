package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travel-backend/models"
)

func newTestMedia(baseURL string) *MediaService {
	return &MediaService{
		CloudName: "testcloud",
		APIKey:    "key",
		APISecret: "secret",
		BaseURL:   baseURL,
		Client:    http.DefaultClient,
	}
}

func TestPackageCreateDefaultsPriceTag(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg, err := svc.Create(context.Background(), PackageCreate{
		Title: "t", Description: "d", Price: "$10.000", Image: "i", Category: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "DESDE", pkg.PriceTag)

	pkg, err = svc.Create(context.Background(), PackageCreate{
		Title: "t2", Description: "d", Price: "$10.000", Image: "i", Category: "c",
		PriceTag: "PROMO",
	})
	require.NoError(t, err)
	assert.Equal(t, "PROMO", pkg.PriceTag)
}

func TestPackageUpdateIsPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "original", Description: "desc", Price: "$10", Image: "i", Category: "c",
		Duration: "3 días",
	})

	got, err := svc.Update(context.Background(), pkg.ID, map[string]any{
		"title": "nuevo",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", got.Title)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "3 días", got.Duration)
}

func TestPackageUpdateExplicitEmptyOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "$10", Image: "i", Category: "c",
		Duration: "3 días",
	})

	got, err := svc.Update(context.Background(), pkg.ID, map[string]any{
		"duration": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "", got.Duration)
	assert.Equal(t, "t", got.Title)
}

func TestPackageUpdateIgnoresUnknownKeys(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "$10", Image: "i", Category: "c",
	})

	got, err := svc.Update(context.Background(), pkg.ID, map[string]any{
		"id": 999, "no_such_column": "x",
	})
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)
}

func TestPackageUpdateJSONColumns(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "$10", Image: "i", Category: "c",
	})

	got, err := svc.Update(context.Background(), pkg.ID, map[string]any{
		"features": []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.FeatureList())
}

func TestPromoteAppendsToCarousel(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	createPackage(t, db, &models.Package{
		Title: "existente", Description: "d", Price: "1", Image: "i", Category: "c",
		Promoted: true, CarouselOrder: 3,
	})
	pkg := createPackage(t, db, &models.Package{
		Title: "nuevo", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	got, err := svc.Promote(context.Background(), pkg.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Promoted)
	assert.Equal(t, 4, got.CarouselOrder)
}

func TestPromoteKeepsExistingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
		CarouselOrder: 7,
	})

	got, err := svc.Promote(context.Background(), pkg.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 7, got.CarouselOrder)
}

func TestReorderCarouselSkipsInvalidEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	promoted := createPackage(t, db, &models.Package{
		Title: "promo", Description: "d", Price: "1", Image: "i", Category: "c",
		Promoted: true, CarouselOrder: 1,
	})
	plain := createPackage(t, db, &models.Package{
		Title: "plain", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	applied, err := svc.ReorderCarousel(context.Background(), []ReorderEntry{
		{ID: promoted.ID, Order: 5},
		{ID: plain.ID, Order: 2},
		{ID: 9999, Order: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	var got models.Package
	require.NoError(t, db.First(&got, promoted.ID).Error)
	assert.Equal(t, 5, got.CarouselOrder)

	got = models.Package{}
	require.NoError(t, db.First(&got, plain.ID).Error)
	assert.Equal(t, 0, got.CarouselOrder)
}

func TestPackageDeleteRemovesChildrenAndMedia(t *testing.T) {
	var mu sync.Mutex
	var destroyed []string
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		mu.Lock()
		destroyed = append(destroyed, r.PostFormValue("public_id"))
		mu.Unlock()
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer fake.Close()

	db := newTestDB(t)
	svc := NewPackageService(db, newTestMedia(fake.URL), nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Category: "c",
		Image: "https://res.cloudinary.com/testcloud/image/upload/v123/covers/abc.jpg",
	})
	require.NoError(t, db.Create(&models.PackageHotel{
		PackageID: pkg.ID, Name: "h",
		Image: "https://example.com/not-provider.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.GalleryImage{
		PackageID: pkg.ID,
		URL:       "https://res.cloudinary.com/testcloud/image/upload/gallery/xyz.png",
	}).Error)
	require.NoError(t, db.Create(&models.PackageInfo{
		PackageID: pkg.ID, Icon: "i", Label: "l", Value: "v",
	}).Error)
	require.NoError(t, db.Create(&models.PackageFeature{
		PackageID: pkg.ID, Text: "f",
	}).Error)

	require.NoError(t, svc.Delete(context.Background(), pkg.ID))

	// Only provider-hosted assets produce destroy calls.
	assert.ElementsMatch(t, []string{"covers/abc", "gallery/xyz"}, destroyed)

	var count int64
	db.Model(&models.Package{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.PackageHotel{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.GalleryImage{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.PackageInfo{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.PackageFeature{}).Count(&count)
	assert.Zero(t, count)
}

func TestPackageDeleteUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &MediaService{}, nil)

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
