package services

import (
	"context"
	"math"

	"travel-backend/models"
	"travel-backend/utils"

	"gorm.io/gorm"
)

// CatalogService builds the public package views: base row, feature-row
// supersession and the lowest-hotel-price merge.
type CatalogService struct {
	DB    *gorm.DB
	Cache *Cache
}

func NewCatalogService(db *gorm.DB, cache *Cache) *CatalogService {
	return &CatalogService{DB: db, Cache: cache}
}

func (s *CatalogService) withChildren() *gorm.DB {
	return s.DB.
		Preload("FeatRows", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Hotels", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}

// buildView merges the base row with its normalized children. When
// feature rows exist they replace the legacy embedded features array.
// When hotels exist the displayed price becomes the original price
// string of the cheapest hotel, so real formatting is preserved.
func buildView(p *models.Package) models.PackageView {
	view := p.View()

	if len(p.FeatRows) > 0 {
		texts := make([]string, len(p.FeatRows))
		for i, row := range p.FeatRows {
			texts[i] = row.Text
		}
		view.Features = texts
	}

	if len(p.Hotels) > 0 {
		best := math.Inf(1)
		for _, h := range p.Hotels {
			if v := utils.ParsePrice(h.Price); v < best {
				best = v
				view.Price = h.Price
			}
		}
	}

	return view
}

// ListPackages returns every package view, id ascending.
func (s *CatalogService) ListPackages(ctx context.Context) ([]models.PackageView, error) {
	views := []models.PackageView{}
	if s.Cache.Get(ctx, "catalog:packages", &views) {
		return views, nil
	}

	var packages []models.Package
	if err := s.withChildren().Order("id ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	for i := range packages {
		views = append(views, buildView(&packages[i]))
	}

	s.Cache.Set(ctx, "catalog:packages", views)
	return views, nil
}

// GetPackage returns one package view. gorm.ErrRecordNotFound passes
// through untouched so handlers can answer 404 instead of 500.
func (s *CatalogService) GetPackage(ctx context.Context, id uint) (*models.PackageView, error) {
	var pkg models.Package
	if err := s.withChildren().First(&pkg, id).Error; err != nil {
		return nil, err
	}
	view := buildView(&pkg)
	return &view, nil
}

// ListPromoted returns the carousel packages ordered by carousel position.
func (s *CatalogService) ListPromoted(ctx context.Context) ([]models.PackageView, error) {
	views := []models.PackageView{}
	if s.Cache.Get(ctx, "catalog:promoted", &views) {
		return views, nil
	}

	var packages []models.Package
	err := s.withChildren().
		Where("promoted = ?", true).
		Order("carousel_order ASC, id ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	for i := range packages {
		views = append(views, buildView(&packages[i]))
	}

	s.Cache.Set(ctx, "catalog:promoted", views)
	return views, nil
}

func (s *CatalogService) packageExists(id uint) error {
	var pkg models.Package
	return s.DB.Select("id").First(&pkg, id).Error
}

// ListHotels returns a package's hotels grouped by destination.
func (s *CatalogService) ListHotels(ctx context.Context, packageID uint) ([]models.PackageHotelView, error) {
	if err := s.packageExists(packageID); err != nil {
		return nil, err
	}

	var hotels []models.PackageHotel
	err := s.DB.
		Where("package_id = ?", packageID).
		Order("destination ASC, order_in_destination ASC, order_index ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.PackageHotelView, len(hotels))
	for i := range hotels {
		views[i] = hotels[i].View()
	}
	return views, nil
}

// HotelsByDestination groups the ordered hotel list for display. Group
// order follows first appearance in the ordered list.
func HotelsByDestination(hotels []models.PackageHotelView) []map[string]any {
	grouped := []map[string]any{}
	index := map[string]int{}
	for _, h := range hotels {
		i, ok := index[h.Destination]
		if !ok {
			index[h.Destination] = len(grouped)
			grouped = append(grouped, map[string]any{
				"destination": h.Destination,
				"hotels":      []models.PackageHotelView{h},
			})
			continue
		}
		grouped[i]["hotels"] = append(grouped[i]["hotels"].([]models.PackageHotelView), h)
	}
	return grouped
}

// ListGallery returns a package's gallery ordered for display.
func (s *CatalogService) ListGallery(ctx context.Context, packageID uint) ([]models.GalleryImage, error) {
	if err := s.packageExists(packageID); err != nil {
		return nil, err
	}

	images := []models.GalleryImage{}
	err := s.DB.
		Where("package_id = ?", packageID).
		Order("order_index ASC, id ASC").
		Find(&images).Error
	return images, err
}

// ListInfo returns a package's info rows ordered by order_index.
func (s *CatalogService) ListInfo(ctx context.Context, packageID uint) ([]models.PackageInfo, error) {
	if err := s.packageExists(packageID); err != nil {
		return nil, err
	}

	rows := []models.PackageInfo{}
	err := s.DB.
		Where("package_id = ?", packageID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ListFeatures returns a package's feature rows ordered by order_index.
func (s *CatalogService) ListFeatures(ctx context.Context, packageID uint) ([]models.PackageFeature, error) {
	if err := s.packageExists(packageID); err != nil {
		return nil, err
	}

	rows := []models.PackageFeature{}
	err := s.DB.
		Where("package_id = ?", packageID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
