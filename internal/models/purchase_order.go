package models

import "time"

const (
	PurchaseOrderPending   = "Pending"
	PurchaseOrderDelivered = "Delivered"
)

type PurchaseOrder struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	MaterialID       uint       `gorm:"index;not null" json:"material_id"`
	Material         Material   `json:"-"`
	VendorID         *uint      `gorm:"index" json:"vendor_id"` // optional
	Quantity         int        `gorm:"not null" json:"quantity"`
	AgreedPrice      float64    `gorm:"not null" json:"agreed_price"`
	Status           string     `gorm:"size:50;not null;default:'Pending'" json:"status"`
	OrderDate        time.Time  `gorm:"type:date;not null" json:"order_date"`
	ExpectedDelivery *time.Time `gorm:"type:date" json:"expected_delivery"`
	ActualDelivery   *time.Time `gorm:"type:date" json:"actual_delivery"` // set on receipt
	Notes            string     `gorm:"size:255" json:"notes"`
	CreatedBy        string     `gorm:"size:100" json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
