package models

import "time"

// Vendor: reference data owned by the vendor service, read here for joins.
type Vendor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ContactPerson string    `gorm:"size:255" json:"contact_person"`
	Phone         string    `gorm:"size:50" json:"phone"`
	Email         string    `gorm:"size:255" json:"email"`
	Address       string    `gorm:"size:500" json:"address"`
	Rating        float64   `gorm:"not null;default:0" json:"rating"`
	Status        string    `gorm:"size:50;not null;default:'Active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
