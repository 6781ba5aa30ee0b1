package model

import "time"

// Supply is a receipt of a material quantity from a supplier
type Supply struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MaterialID uint      `gorm:"not null;index" json:"material_id"`
	SupplierID uint      `gorm:"not null;index" json:"supplier_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Date       time.Time `gorm:"not null" json:"date"`
}

// Spend is a consumption record for a material quantity
type Spend struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MaterialID uint      `gorm:"not null;index" json:"material_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Date       time.Time `gorm:"not null" json:"date"`
}

func (Spend) TableName() string { return "spent_materials" }
