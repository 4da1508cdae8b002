package models

import (
	"time"

	"gorm.io/datatypes"
)

// Package is a sellable tour shown in the public catalog.
//
// Features and GalleryImages are legacy JSON columns kept for rows created
// before the package_features / gallery_images tables existed; when child
// rows are present they supersede these columns in the serialized view.
type Package struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Price       string `gorm:"size:100;not null" json:"price"`
	PriceTag    string `gorm:"size:50;not null;default:DESDE" json:"price_tag"`
	Image       string `gorm:"size:500;not null" json:"image"`
	Category    string `gorm:"size:50;not null" json:"category"`

	Features      datatypes.JSON `gorm:"column:features" json:"-"`
	Duration      string         `gorm:"size:100" json:"duration"`
	Destination   string         `gorm:"size:255" json:"destination"`
	IdealFor      string         `gorm:"size:255" json:"ideal_for"`
	GalleryImages datatypes.JSON `gorm:"column:gallery_images" json:"-"`
	Itinerary     datatypes.JSON `gorm:"column:itinerary" json:"-"`

	Promoted      bool `gorm:"not null;default:false" json:"promoted"`
	CarouselOrder int  `gorm:"not null;default:0" json:"carousel_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotels   []PackageHotel   `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
	Gallery  []GalleryImage   `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
	InfoRows []PackageInfo    `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
	FeatRows []PackageFeature `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Package) TableName() string { return "packages" }

// ItineraryItem is one day entry of a package itinerary.
type ItineraryItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeatureList decodes the legacy features column once into a typed slice.
func (p *Package) FeatureList() []string {
	return decodeStringList(p.Features)
}

// GalleryList decodes the legacy gallery_images column.
func (p *Package) GalleryList() []string {
	return decodeStringList(p.GalleryImages)
}

// ItineraryList decodes the itinerary column.
func (p *Package) ItineraryList() []ItineraryItem {
	out := []ItineraryItem{}
	decodeJSONColumn(p.Itinerary, &out)
	return out
}

// PackageView is the canonical external representation of a package.
// Catalog reads serve this shape, never the raw row.
type PackageView struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         string          `json:"price"`
	PriceTag      string          `json:"price_tag"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	Features      []string        `json:"features"`
	Duration      string          `json:"duration"`
	Destination   string          `json:"destination"`
	IdealFor      string          `json:"ideal_for"`
	GalleryImages []string        `json:"gallery_images"`
	Itinerary     []ItineraryItem `json:"itinerary"`
	Promoted      bool            `json:"promoted"`
	CarouselOrder int             `json:"carousel_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// View maps the row to its external shape. Supersession of features and
// the hotel-derived price happen in the catalog service, not here.
func (p *Package) View() PackageView {
	return PackageView{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		PriceTag:      p.PriceTag,
		Image:         p.Image,
		Category:      p.Category,
		Features:      p.FeatureList(),
		Duration:      p.Duration,
		Destination:   p.Destination,
		IdealFor:      p.IdealFor,
		GalleryImages: p.GalleryList(),
		Itinerary:     p.ItineraryList(),
		Promoted:      p.Promoted,
		CarouselOrder: p.CarouselOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
