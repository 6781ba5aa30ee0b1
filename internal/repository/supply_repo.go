package repository

import (
	"backend/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// SupplyRow is a supply joined with its material and supplier display fields
type SupplyRow struct {
	ID           uint      `json:"id"`
	MaterialID   uint      `json:"material_id"`
	SupplierID   uint      `json:"supplier_id"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	MaterialName string    `json:"material_name"`
	SupplierName string    `json:"supplier_name"`
	Unit         string    `json:"unit"`
	DateHuman    string    `gorm:"-" json:"date_human"`
}

// SupplyRepository defines the interface for data access of Supply entities
type SupplyRepository interface {
	Create(ctx context.Context, supply *model.Supply) error
	GetByID(ctx context.Context, id uint) (*model.Supply, error)
	List(ctx context.Context) ([]SupplyRow, error)
	Update(ctx context.Context, supply *model.Supply) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type supplyRepository struct {
	db *gorm.DB
}

// NewSupplyRepository returns a new instance of SupplyRepository
func NewSupplyRepository(db *gorm.DB) SupplyRepository {
	return &supplyRepository{db: db}
}

func (r *supplyRepository) Create(ctx context.Context, supply *model.Supply) error {
	return r.db.WithContext(ctx).Create(supply).Error
}

func (r *supplyRepository) GetByID(ctx context.Context, id uint) (*model.Supply, error) {
	var supply model.Supply
	if err := r.db.WithContext(ctx).First(&supply, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supply, nil
}

// List returns all supplies with joined material/supplier names for display
func (r *supplyRepository) List(ctx context.Context) ([]SupplyRow, error) {
	var rows []SupplyRow
	err := r.db.WithContext(ctx).Table("supplies s").
		Select("s.id, s.material_id, s.supplier_id, s.quantity, s.date, m.name AS material_name, m.unit AS unit, sp.name AS supplier_name").
		Joins("LEFT JOIN materials m ON s.material_id = m.id").
		Joins("LEFT JOIN suppliers sp ON s.supplier_id = sp.id").
		Order("s.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *supplyRepository) Update(ctx context.Context, supply *model.Supply) error {
	return r.db.WithContext(ctx).Save(supply).Error
}

func (r *supplyRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Supply{})
	return res.RowsAffected > 0, res.Error
}
