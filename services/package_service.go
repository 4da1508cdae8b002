package services

import (
	"context"
	"log"

	"travel-backend/models"

	"gorm.io/gorm"
)

// PackageService owns the admin mutations on packages: CRUD, promotion
// and carousel ordering. Media cleanup at the external provider happens
// before the transactional row delete — two failure domains, two phases.
type PackageService struct {
	DB    *gorm.DB
	Media *MediaService
	Cache *Cache
}

func NewPackageService(db *gorm.DB, media *MediaService, cache *Cache) *PackageService {
	return &PackageService{DB: db, Media: media, Cache: cache}
}

// PackageCreate is the payload for creating a package.
type PackageCreate struct {
	Title         string                 `json:"title" binding:"required"`
	Description   string                 `json:"description" binding:"required"`
	Price         string                 `json:"price" binding:"required"`
	PriceTag      string                 `json:"price_tag"`
	Image         string                 `json:"image" binding:"required"`
	Category      string                 `json:"category" binding:"required"`
	Features      []string               `json:"features"`
	Duration      string                 `json:"duration"`
	Destination   string                 `json:"destination"`
	IdealFor      string                 `json:"ideal_for"`
	GalleryImages []string               `json:"gallery_images"`
	Itinerary     []models.ItineraryItem `json:"itinerary"`
}

func (s *PackageService) Create(ctx context.Context, input PackageCreate) (*models.Package, error) {
	priceTag := input.PriceTag
	if priceTag == "" {
		priceTag = "DESDE"
	}

	pkg := models.Package{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		PriceTag:      priceTag,
		Image:         input.Image,
		Category:      input.Category,
		Features:      models.MustJSON(input.Features),
		Duration:      input.Duration,
		Destination:   input.Destination,
		IdealFor:      input.IdealFor,
		GalleryImages: models.MustJSON(input.GalleryImages),
		Itinerary:     models.MustJSON(input.Itinerary),
	}

	if err := s.DB.Create(&pkg).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &pkg, nil
}

// packageColumns maps accepted update keys to their column names. Keys
// absent from the request map are never touched; keys present with a
// null/empty value overwrite.
var packageScalarColumns = map[string]bool{
	"title": true, "description": true, "price": true, "price_tag": true,
	"image": true, "category": true, "duration": true, "destination": true,
	"ideal_for": true, "promoted": true, "carousel_order": true,
}

var packageJSONColumns = map[string]bool{
	"features": true, "gallery_images": true, "itinerary": true,
}

// Update applies a partial update: only the fields present in the
// request map are written.
func (s *PackageService) Update(ctx context.Context, id uint, fields map[string]any) (*models.Package, error) {
	var pkg models.Package
	if err := s.DB.First(&pkg, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, value := range fields {
		switch {
		case packageScalarColumns[key]:
			updates[key] = value
		case packageJSONColumns[key]:
			updates[key] = models.MustJSON(value)
		}
	}
	if len(updates) == 0 {
		return &pkg, nil
	}

	if err := s.DB.Model(&pkg).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	if err := s.DB.First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Delete removes a package and its children. External media cleanup runs
// first and is best-effort: a dead provider never blocks the delete, it
// only leaves orphaned assets to garbage-collect later.
func (s *PackageService) Delete(ctx context.Context, id uint) error {
	var pkg models.Package
	err := s.DB.
		Preload("Hotels").
		Preload("Gallery").
		First(&pkg, id).Error
	if err != nil {
		return err
	}

	s.Media.DeleteByURL(pkg.Image)
	for _, img := range pkg.Gallery {
		s.Media.DeleteByURL(img.URL)
	}
	for _, h := range pkg.Hotels {
		s.Media.DeleteByURL(h.Image)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageHotel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageInfo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Package{}, id).Error
	})
	if err != nil {
		return err
	}

	s.Cache.InvalidateCatalog(ctx)
	return nil
}

// Promote toggles carousel membership. A package promoted while its
// carousel_order is zero is appended after the existing ones.
func (s *PackageService) Promote(ctx context.Context, id uint, promoted bool) (*models.Package, error) {
	var pkg models.Package
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pkg, id).Error; err != nil {
			return err
		}

		updates := map[string]any{"promoted": promoted}
		if promoted && pkg.CarouselOrder == 0 {
			var maxOrder int
			tx.Model(&models.Package{}).
				Where("promoted = ?", true).
				Select("COALESCE(MAX(carousel_order), 0)").
				Scan(&maxOrder)
			updates["carousel_order"] = maxOrder + 1
		}

		return tx.Model(&pkg).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &pkg, nil
}

// SetCarouselOrder assigns a single package's carousel position.
func (s *PackageService) SetCarouselOrder(ctx context.Context, id uint, order int) (*models.Package, error) {
	var pkg models.Package
	if err := s.DB.First(&pkg, id).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&pkg).Update("carousel_order", order).Error; err != nil {
		return nil, err
	}
	s.Cache.InvalidateCatalog(ctx)
	return &pkg, nil
}

// ReorderEntry is one item of a bulk carousel reorder request.
type ReorderEntry struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// ReorderCarousel applies a bulk reorder in one transaction. Entries
// whose id does not exist or whose package is not promoted are skipped;
// the valid ones commit together or not at all. Returns how many were
// applied.
func (s *PackageService) ReorderCarousel(ctx context.Context, entries []ReorderEntry) (int, error) {
	applied := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			var pkg models.Package
			if err := tx.First(&pkg, entry.ID).Error; err != nil {
				log.Printf("warning: reorder skipped unknown package %d", entry.ID)
				continue
			}
			if !pkg.Promoted {
				log.Printf("warning: reorder skipped non-promoted package %d", entry.ID)
				continue
			}
			if err := tx.Model(&pkg).Update("carousel_order", entry.Order).Error; err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return applied, nil
}
