package models

import (
	"time"

	"gorm.io/gorm"
)

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// External-facing reference, independent of the numeric key.
	BookingID string `gorm:"size:36;uniqueIndex;not null" json:"bookingId"`

	CustomerID uint `json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	TechnicianID uint `json:"technicianId"`
	Technician   User `gorm:"foreignKey:TechnicianID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician,omitempty"`

	Status string `gorm:"size:50;default:'Pending'" json:"status"`

	ServiceTotal    int `json:"serviceTotal"`
	SparepartsTotal int `json:"sparepartsTotal"`
	GrandTotal      int `json:"grandTotal"`

	Services   []Service   `gorm:"many2many:transaction_services;constraint:OnDelete:CASCADE;" json:"services"`
	Spareparts []Sparepart `gorm:"many2many:transaction_spareparts;constraint:OnDelete:CASCADE;" json:"spareparts"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
