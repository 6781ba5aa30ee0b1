package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// EquipmentRepository defines the interface for data access of Equipment entities
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *model.Equipment) error
	GetByID(ctx context.Context, id uint) (*model.Equipment, error)
	List(ctx context.Context) ([]model.Equipment, error)
	Update(ctx context.Context, equipment *model.Equipment) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository returns a new instance of EquipmentRepository
func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepository) GetByID(ctx context.Context, id uint) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]model.Equipment, error) {
	var equipment []model.Equipment
	if err := r.db.WithContext(ctx).Order("id").Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

func (r *equipmentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Equipment{})
	return res.RowsAffected > 0, res.Error
}
