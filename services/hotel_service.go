package services

import (
	"context"

	"travel-backend/models"

	"gorm.io/gorm"
)

// HotelService owns the admin mutations on a package's hotels.
type HotelService struct {
	DB    *gorm.DB
	Media *MediaService
	Cache *Cache
}

func NewHotelService(db *gorm.DB, media *MediaService, cache *Cache) *HotelService {
	return &HotelService{DB: db, Media: media, Cache: cache}
}

// HotelCreate is the payload for adding a hotel to a package.
type HotelCreate struct {
	Name                        string   `json:"name" binding:"required"`
	Description                 string   `json:"description"`
	Image                       string   `json:"image"`
	Price                       string   `json:"price"`
	Amenities                   []string `json:"amenities"`
	Destination                 string   `json:"destination"`
	Days                        int      `json:"days"`
	AllowUserDays               bool     `json:"allow_user_days"`
	AllowMultiplePerDestination bool     `json:"allow_multiple_per_destination"`
}

func (s *HotelService) Create(ctx context.Context, packageID uint, input HotelCreate) (*models.PackageHotel, error) {
	if err := s.DB.Select("id").First(&models.Package{}, packageID).Error; err != nil {
		return nil, err
	}

	destination := input.Destination
	if destination == "" {
		destination = "Destino principal"
	}
	days := input.Days
	if days <= 0 {
		days = 1
	}

	hotel := models.PackageHotel{
		PackageID:                   packageID,
		Name:                        input.Name,
		Description:                 input.Description,
		Image:                       input.Image,
		Price:                       input.Price,
		Amenities:                   models.MustJSON(input.Amenities),
		Destination:                 destination,
		Days:                        days,
		AllowUserDays:               input.AllowUserDays,
		AllowMultiplePerDestination: input.AllowMultiplePerDestination,
		OrderIndex:                  nextOrderIndex(s.DB, &models.PackageHotel{}, packageID),
	}

	var maxInDest int
	s.DB.Model(&models.PackageHotel{}).
		Where("package_id = ? AND destination = ?", packageID, destination).
		Select("COALESCE(MAX(order_in_destination), 0)").
		Scan(&maxInDest)
	hotel.OrderInDestination = maxInDest + 1

	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &hotel, nil
}

var hotelScalarColumns = map[string]bool{
	"name": true, "description": true, "image": true, "price": true,
	"destination": true, "days": true, "allow_user_days": true,
	"allow_multiple_per_destination": true, "order_index": true,
	"order_in_destination": true,
}

// Update applies a partial update to a hotel scoped to its package.
func (s *HotelService) Update(ctx context.Context, packageID, hotelID uint, fields map[string]any) (*models.PackageHotel, error) {
	var hotel models.PackageHotel
	if err := s.DB.Where("package_id = ?", packageID).First(&hotel, hotelID).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, value := range fields {
		switch {
		case hotelScalarColumns[key]:
			updates[key] = value
		case key == "amenities":
			updates[key] = models.MustJSON(value)
		}
	}
	if len(updates) == 0 {
		return &hotel, nil
	}

	if err := s.DB.Model(&hotel).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Delete removes a hotel, attempting provider-side cleanup of its image
// first.
func (s *HotelService) Delete(ctx context.Context, packageID, hotelID uint) error {
	var hotel models.PackageHotel
	if err := s.DB.Where("package_id = ?", packageID).First(&hotel, hotelID).Error; err != nil {
		return err
	}

	s.Media.DeleteByURL(hotel.Image)

	if err := s.DB.Delete(&hotel).Error; err != nil {
		return err
	}

	s.Cache.InvalidateCatalog(ctx)
	return nil
}
