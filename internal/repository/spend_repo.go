package repository

import (
	"backend/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// SpendRow is a spend record joined with its material display fields
type SpendRow struct {
	ID           uint      `json:"id"`
	MaterialID   uint      `json:"material_id"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	MaterialName string    `json:"material_name"`
	Unit         string    `json:"unit"`
	DateHuman    string    `gorm:"-" json:"date_human"`
}

// SpendRepository defines the interface for data access of Spend entities
type SpendRepository interface {
	Create(ctx context.Context, spend *model.Spend) error
	GetByID(ctx context.Context, id uint) (*model.Spend, error)
	List(ctx context.Context) ([]SpendRow, error)
	Update(ctx context.Context, spend *model.Spend) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type spendRepository struct {
	db *gorm.DB
}

// NewSpendRepository returns a new instance of SpendRepository
func NewSpendRepository(db *gorm.DB) SpendRepository {
	return &spendRepository{db: db}
}

func (r *spendRepository) Create(ctx context.Context, spend *model.Spend) error {
	return r.db.WithContext(ctx).Create(spend).Error
}

func (r *spendRepository) GetByID(ctx context.Context, id uint) (*model.Spend, error) {
	var spend model.Spend
	if err := r.db.WithContext(ctx).First(&spend, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &spend, nil
}

func (r *spendRepository) List(ctx context.Context) ([]SpendRow, error) {
	var rows []SpendRow
	err := r.db.WithContext(ctx).Table("spent_materials s").
		Select("s.id, s.material_id, s.quantity, s.date, m.name AS material_name, m.unit AS unit").
		Joins("LEFT JOIN materials m ON s.material_id = m.id").
		Order("s.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *spendRepository) Update(ctx context.Context, spend *model.Spend) error {
	return r.db.WithContext(ctx).Save(spend).Error
}

func (r *spendRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Spend{})
	return res.RowsAffected > 0, res.Error
}
