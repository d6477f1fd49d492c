package models

import "time"

type Material struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Category  string    `gorm:"size:100;not null;default:'General'" json:"category"`
	Unit      string    `gorm:"size:50;not null" json:"unit"` // kg, bag, m3, piece
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	MinStock  int       `gorm:"not null;default:10" json:"min_stock"` // reorder threshold
	Status    string    `gorm:"size:50;not null" json:"status"`       // derived, see internal/ledger
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
