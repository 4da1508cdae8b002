package models

import "time"

// GalleryImage is one photo attached to a package. Filename is only set
// for uploaded images; URL-added images leave it nil. Deleting a gallery
// image also removes its backing media at the provider (see media service).
type GalleryImage struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PackageID uint    `gorm:"index;not null" json:"package_id"`
	URL       string  `gorm:"size:500;not null" json:"url"`
	Filename  *string `gorm:"size:255" json:"filename,omitempty"`
	Caption   string  `gorm:"size:255" json:"caption"`

	OrderIndex int `gorm:"default:0" json:"order_index"`
	IsCover    int `gorm:"default:0" json:"is_cover"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GalleryImage) TableName() string { return "gallery_images" }
