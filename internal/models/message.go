package models

import "time"

// Message is an inquiry sent by a buyer about a home to the home's realtor.
type Message struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Message string `gorm:"type:text;not null" json:"message"`

	HomeID uint `gorm:"not null;index" json:"home_id"`
	Home   Home `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	BuyerID uint `gorm:"not null" json:"buyer_id"`
	Buyer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	RealtorID uint `gorm:"not null" json:"realtor_id"`
	Realtor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
