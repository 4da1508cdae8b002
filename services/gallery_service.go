package services

import (
	"context"

	"travel-backend/models"

	"gorm.io/gorm"
)

// GalleryService owns the admin mutations on a package's gallery.
type GalleryService struct {
	DB    *gorm.DB
	Media *MediaService
	Cache *Cache
}

func NewGalleryService(db *gorm.DB, media *MediaService, cache *Cache) *GalleryService {
	return &GalleryService{DB: db, Media: media, Cache: cache}
}

// Add appends an image to a package's gallery. filename is nil for
// URL-added images and set for uploads.
func (s *GalleryService) Add(ctx context.Context, packageID uint, url string, filename *string, caption string, isCover bool) (*models.GalleryImage, error) {
	if err := s.DB.Select("id").First(&models.Package{}, packageID).Error; err != nil {
		return nil, err
	}

	image := models.GalleryImage{
		PackageID:  packageID,
		URL:        url,
		Filename:   filename,
		Caption:    caption,
		OrderIndex: nextOrderIndex(s.DB, &models.GalleryImage{}, packageID),
	}
	if isCover {
		image.IsCover = 1
	}

	if err := s.DB.Create(&image).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &image, nil
}

var galleryColumns = map[string]bool{
	"caption": true, "order_index": true, "is_cover": true,
}

// Update applies a partial update to a gallery image scoped to its
// package. The URL itself is immutable; replace means delete + re-add.
func (s *GalleryService) Update(ctx context.Context, packageID, imageID uint, fields map[string]any) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.DB.Where("package_id = ?", packageID).First(&image, imageID).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, value := range fields {
		if galleryColumns[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return &image, nil
	}

	if err := s.DB.Model(&image).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	if err := s.DB.First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes a gallery image, attempting provider-side cleanup of
// the backing media first.
func (s *GalleryService) Delete(ctx context.Context, packageID, imageID uint) error {
	var image models.GalleryImage
	if err := s.DB.Where("package_id = ?", packageID).First(&image, imageID).Error; err != nil {
		return err
	}

	s.Media.DeleteByURL(image.URL)

	if err := s.DB.Delete(&image).Error; err != nil {
		return err
	}

	s.Cache.InvalidateCatalog(ctx)
	return nil
}
