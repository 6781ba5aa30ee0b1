package model

// Material is a raw material tracked by the accounting system.
// Stock on hand is not stored here; it is derived from supplies and spends.
type Material struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Unit string `gorm:"type:varchar(50)" json:"unit"`
}

// Supplier is a counterparty materials are received from
type Supplier struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	ContactInfo string `gorm:"type:text;column:contact_info" json:"contact_info"`
}

// Equipment is a piece of equipment on the department's books
type Equipment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Equipment) TableName() string { return "equipment" }
