package models

import "time"

// MaterialUsage: a single usage event against a material. Written once when
// stock is consumed, never updated afterwards.
type MaterialUsage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MaterialID uint      `gorm:"index;not null" json:"material_id"`
	Material   Material  `json:"-"`
	ProjectID  *uint     `gorm:"index" json:"project_id"` // optional
	Quantity   int       `gorm:"not null" json:"quantity"`
	UsageDate  time.Time `gorm:"type:date;not null" json:"usage_date"`
	Notes      string    `gorm:"size:255" json:"notes"`
	RecordedBy string    `gorm:"size:100" json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MaterialUsage) TableName() string { return "material_usage" }
