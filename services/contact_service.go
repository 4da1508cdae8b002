package services

import (
	"travel-backend/models"

	"gorm.io/gorm"
)

// ContactService persists inbound inquiries. Messages are immutable:
// create and read only.
type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// ContactCreate is the payload of an inbound inquiry.
type ContactCreate struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" binding:"required"`
}

func (s *ContactService) Create(input ContactCreate) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns every message, newest first.
func (s *ContactService) List() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := s.DB.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}
