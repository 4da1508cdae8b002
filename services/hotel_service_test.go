package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travel-backend/models"
)

func TestHotelCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	hotel, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "Hotel Uno"})
	require.NoError(t, err)
	assert.Equal(t, "Destino principal", hotel.Destination)
	assert.Equal(t, 1, hotel.Days)
	assert.Equal(t, 1, hotel.OrderIndex)
	assert.Equal(t, 1, hotel.OrderInDestination)
}

func TestHotelCreateOrderingPerDestination(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	a1, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "a1", Destination: "Bariloche"})
	require.NoError(t, err)
	a2, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "a2", Destination: "Bariloche"})
	require.NoError(t, err)
	b1, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "b1", Destination: "Mendoza"})
	require.NoError(t, err)

	// OrderIndex is global to the package, OrderInDestination restarts
	// per destination label.
	assert.Equal(t, 1, a1.OrderIndex)
	assert.Equal(t, 2, a2.OrderIndex)
	assert.Equal(t, 3, b1.OrderIndex)
	assert.Equal(t, 1, a1.OrderInDestination)
	assert.Equal(t, 2, a2.OrderInDestination)
	assert.Equal(t, 1, b1.OrderInDestination)
}

func TestHotelCreateUnknownPackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	_, err := svc.Create(context.Background(), 77, HotelCreate{Name: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHotelUpdateAmenities(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	hotel, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "h", Price: "$10"})
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), pkg.ID, hotel.ID, map[string]any{
		"amenities": []string{"wifi", "pileta"},
		"name":      "renombrado",
	})
	require.NoError(t, err)
	assert.Equal(t, "renombrado", got.Name)
	assert.Equal(t, []string{"wifi", "pileta"}, got.AmenityList())
	assert.Equal(t, "$10", got.Price)
}

func TestHotelUpdateScopedToPackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	pkg1 := createPackage(t, db, &models.Package{
		Title: "t1", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	pkg2 := createPackage(t, db, &models.Package{
		Title: "t2", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	hotel, err := svc.Create(context.Background(), pkg1.ID, HotelCreate{Name: "h"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), pkg2.ID, hotel.ID, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHotelDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db, &MediaService{}, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	hotel, err := svc.Create(context.Background(), pkg.ID, HotelCreate{Name: "h"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), pkg.ID, hotel.ID))

	var count int64
	db.Model(&models.PackageHotel{}).Count(&count)
	assert.Zero(t, count)
}
