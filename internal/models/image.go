package models

import "time"

type Image struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	URL    string `gorm:"type:text;not null" json:"url"`
	HomeID uint   `gorm:"not null;index" json:"home_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
