package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100" json:"fullName"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	PhotoURL     string `gorm:"size:255" json:"photoUrl"`
	Phone        string `gorm:"size:20" json:"phone"`

	RoleID *uint `json:"roleId"`
	Role   *Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role,omitempty"`

	// Set only for Admin/Technician accounts bound to a garage.
	GarageID *uint   `json:"garageId"`
	Garage   *Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"garage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
