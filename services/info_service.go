package services

import (
	"context"

	"travel-backend/models"

	"gorm.io/gorm"
)

// nextOrderIndex computes the ordinal for a new child row of a package:
// current maximum plus one, so the first row of an empty list gets 1.
func nextOrderIndex(db *gorm.DB, model any, packageID uint) int {
	var max int
	db.Model(model).
		Where("package_id = ?", packageID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&max)
	return max + 1
}

// InfoService owns the admin mutations on info rows and feature rows.
// Both follow the same ordering discipline.
type InfoService struct {
	DB    *gorm.DB
	Cache *Cache
}

func NewInfoService(db *gorm.DB, cache *Cache) *InfoService {
	return &InfoService{DB: db, Cache: cache}
}

// InfoCreate is the payload for adding an info row.
type InfoCreate struct {
	Icon  string `json:"icon" binding:"required"`
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (s *InfoService) CreateInfo(ctx context.Context, packageID uint, input InfoCreate) (*models.PackageInfo, error) {
	if err := s.DB.Select("id").First(&models.Package{}, packageID).Error; err != nil {
		return nil, err
	}

	row := models.PackageInfo{
		PackageID:  packageID,
		Icon:       input.Icon,
		Label:      input.Label,
		Value:      input.Value,
		OrderIndex: nextOrderIndex(s.DB, &models.PackageInfo{}, packageID),
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &row, nil
}

var infoColumns = map[string]bool{
	"icon": true, "label": true, "value": true, "order_index": true,
}

func (s *InfoService) UpdateInfo(ctx context.Context, packageID, infoID uint, fields map[string]any) (*models.PackageInfo, error) {
	var row models.PackageInfo
	if err := s.DB.Where("package_id = ?", packageID).First(&row, infoID).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, value := range fields {
		if infoColumns[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return &row, nil
	}

	if err := s.DB.Model(&row).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	if err := s.DB.First(&row, infoID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *InfoService) DeleteInfo(ctx context.Context, packageID, infoID uint) error {
	var row models.PackageInfo
	if err := s.DB.Where("package_id = ?", packageID).First(&row, infoID).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&row).Error; err != nil {
		return err
	}
	s.Cache.InvalidateCatalog(ctx)
	return nil
}

// FeatureCreate is the payload for adding a feature bullet point.
type FeatureCreate struct {
	Text string `json:"text" binding:"required"`
}

func (s *InfoService) CreateFeature(ctx context.Context, packageID uint, input FeatureCreate) (*models.PackageFeature, error) {
	if err := s.DB.Select("id").First(&models.Package{}, packageID).Error; err != nil {
		return nil, err
	}

	row := models.PackageFeature{
		PackageID:  packageID,
		Text:       input.Text,
		OrderIndex: nextOrderIndex(s.DB, &models.PackageFeature{}, packageID),
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	return &row, nil
}

var featureColumns = map[string]bool{
	"text": true, "order_index": true,
}

func (s *InfoService) UpdateFeature(ctx context.Context, packageID, featureID uint, fields map[string]any) (*models.PackageFeature, error) {
	var row models.PackageFeature
	if err := s.DB.Where("package_id = ?", packageID).First(&row, featureID).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, value := range fields {
		if featureColumns[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return &row, nil
	}

	if err := s.DB.Model(&row).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Cache.InvalidateCatalog(ctx)
	if err := s.DB.First(&row, featureID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *InfoService) DeleteFeature(ctx context.Context, packageID, featureID uint) error {
	var row models.PackageFeature
	if err := s.DB.Where("package_id = ?", packageID).First(&row, featureID).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&row).Error; err != nil {
		return err
	}
	s.Cache.InvalidateCatalog(ctx)
	return nil
}
