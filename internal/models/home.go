package models

import "time"

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCondo       PropertyType = "CONDO"
)

type Home struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address           string       `gorm:"size:255;not null" json:"address"`
	City              string       `gorm:"size:100;not null;index" json:"city"`
	Price             float64      `gorm:"not null;index" json:"price"`
	LandSize          float64      `gorm:"not null" json:"land_size"`
	PropertyType      PropertyType `gorm:"size:20;not null;index" json:"property_type"`
	NumberOfBedrooms  int          `gorm:"not null" json:"number_of_bedrooms"`
	NumberOfBathrooms float64      `gorm:"not null" json:"number_of_bathrooms"`

	// No cascade: images are removed explicitly before the home row.
	RealtorID uint    `gorm:"not null;index" json:"realtor_id"`
	Realtor   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"realtor"`
	Images    []Image `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
