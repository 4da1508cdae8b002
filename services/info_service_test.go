package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travel-backend/models"
)

func TestInfoRowsAreNumberedFromOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfoService(db, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	for i, want := range []int{1, 2, 3} {
		row, err := svc.CreateInfo(context.Background(), pkg.ID, InfoCreate{
			Icon: "calendar", Label: "Duración", Value: "3 días",
		})
		require.NoError(t, err, "row %d", i)
		assert.Equal(t, want, row.OrderIndex)
	}
}

func TestFeatureRowsAreNumberedFromOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfoService(db, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	first, err := svc.CreateFeature(context.Background(), pkg.ID, FeatureCreate{Text: "Desayuno"})
	require.NoError(t, err)
	second, err := svc.CreateFeature(context.Background(), pkg.ID, FeatureCreate{Text: "Traslados"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.OrderIndex)
	assert.Equal(t, 2, second.OrderIndex)
}

func TestFeatureNumberingIsPerPackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfoService(db, nil)

	pkg1 := createPackage(t, db, &models.Package{
		Title: "t1", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	pkg2 := createPackage(t, db, &models.Package{
		Title: "t2", Description: "d", Price: "1", Image: "i", Category: "c",
	})

	_, err := svc.CreateFeature(context.Background(), pkg1.ID, FeatureCreate{Text: "a"})
	require.NoError(t, err)
	row, err := svc.CreateFeature(context.Background(), pkg2.ID, FeatureCreate{Text: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, row.OrderIndex)
}

func TestInfoUpdateScopedToPackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfoService(db, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	other := createPackage(t, db, &models.Package{
		Title: "o", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	row, err := svc.CreateInfo(context.Background(), pkg.ID, InfoCreate{Icon: "i", Label: "l", Value: "v"})
	require.NoError(t, err)

	_, err = svc.UpdateInfo(context.Background(), other.ID, row.ID, map[string]any{"label": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := svc.UpdateInfo(context.Background(), pkg.ID, row.ID, map[string]any{"label": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", got.Label)
	assert.Equal(t, "v", got.Value)
}

func TestDeleteFeature(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfoService(db, nil)

	pkg := createPackage(t, db, &models.Package{
		Title: "t", Description: "d", Price: "1", Image: "i", Category: "c",
	})
	row, err := svc.CreateFeature(context.Background(), pkg.ID, FeatureCreate{Text: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFeature(context.Background(), pkg.ID, row.ID))
	assert.ErrorIs(t,
		svc.DeleteFeature(context.Background(), pkg.ID, row.ID),
		gorm.ErrRecordNotFound)
}
