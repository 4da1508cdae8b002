package models

import (
	"time"

	"gorm.io/datatypes"
)

// PackageHotel is a lodging option attached to one package and one
// destination leg. Hotels are grouped by Destination for display; the
// grouping key is the label itself, there is no destination entity.
type PackageHotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PackageID   uint   `gorm:"index;not null" json:"package_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:500" json:"image"`
	Price       string `gorm:"size:100" json:"price"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"-"`

	Destination string `gorm:"size:255;default:'Destino principal'" json:"destination"`
	Days        int    `gorm:"default:1" json:"days"`

	AllowUserDays               bool `gorm:"default:false" json:"allow_user_days"`
	AllowMultiplePerDestination bool `gorm:"default:false" json:"allow_multiple_per_destination"`

	OrderIndex         int `gorm:"default:0" json:"order_index"`
	OrderInDestination int `gorm:"default:0" json:"order_in_destination"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PackageHotel) TableName() string { return "package_hotels" }

// AmenityList decodes the amenities column once into a typed slice.
func (h *PackageHotel) AmenityList() []string {
	return decodeStringList(h.Amenities)
}

// PackageHotelView is the serialized shape with amenities decoded.
type PackageHotelView struct {
	ID                          uint      `json:"id"`
	PackageID                   uint      `json:"package_id"`
	Name                        string    `json:"name"`
	Description                 string    `json:"description"`
	Image                       string    `json:"image"`
	Price                       string    `json:"price"`
	Amenities                   []string  `json:"amenities"`
	Destination                 string    `json:"destination"`
	Days                        int       `json:"days"`
	AllowUserDays               bool      `json:"allow_user_days"`
	AllowMultiplePerDestination bool      `json:"allow_multiple_per_destination"`
	OrderIndex                  int       `json:"order_index"`
	OrderInDestination          int       `json:"order_in_destination"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

func (h *PackageHotel) View() PackageHotelView {
	return PackageHotelView{
		ID:                          h.ID,
		PackageID:                   h.PackageID,
		Name:                        h.Name,
		Description:                 h.Description,
		Image:                       h.Image,
		Price:                       h.Price,
		Amenities:                   h.AmenityList(),
		Destination:                 h.Destination,
		Days:                        h.Days,
		AllowUserDays:               h.AllowUserDays,
		AllowMultiplePerDestination: h.AllowMultiplePerDestination,
		OrderIndex:                  h.OrderIndex,
		OrderInDestination:          h.OrderInDestination,
		CreatedAt:                   h.CreatedAt,
		UpdatedAt:                   h.UpdatedAt,
	}
}
