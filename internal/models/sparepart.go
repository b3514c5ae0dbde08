package models

import "time"

type Sparepart struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	PartNumber string `gorm:"size:100" json:"partNumber"`
	Brand      string `gorm:"size:100" json:"brand"`
	Category   string `gorm:"size:50" json:"category"`
	Price      int    `gorm:"not null;default:0" json:"price"`
	PhotoURL   string `gorm:"size:255" json:"photoUrl"`

	GarageID uint   `json:"garageId"`
	Garage   Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
