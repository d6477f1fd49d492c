package models

import "time"

// VendorMaterial: a vendor's standing offer for a named material. Feeds the
// price comparison endpoint.
type VendorMaterial struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	VendorID         uint      `gorm:"index;not null" json:"vendor_id"`
	Vendor           Vendor    `json:"-"`
	MaterialName     string    `gorm:"size:255;not null" json:"material_name"`
	Price            float64   `gorm:"not null" json:"price"`
	Unit             string    `gorm:"size:50" json:"unit"`
	StockAvailable   int       `gorm:"not null;default:0" json:"stock_available"`
	MinOrderQuantity int       `gorm:"not null;default:1" json:"min_order_quantity"`
	DeliveryTimeDays int       `gorm:"not null;default:1" json:"delivery_time_days"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
