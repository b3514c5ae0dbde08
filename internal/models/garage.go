package models

import "time"

type Garage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	PhotoURL    string `gorm:"size:255" json:"photoUrl"`
	BannerPhoto string `gorm:"size:255" json:"bannerPhoto"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
