package models

import "time"

// Project: reference data owned by the project service, joined into usage
// history for display.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location"`
	Status    string    `gorm:"size:50;not null;default:'Active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
