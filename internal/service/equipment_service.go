package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"
)

// EquipmentService defines the business logic for the equipment registry
type EquipmentService interface {
	AddEquipment(ctx context.Context, name, description string) (uint, error)
	UpdateEquipment(ctx context.Context, id uint, name, description string) error
	DeleteEquipment(ctx context.Context, id uint) (bool, error)
	GetEquipment(ctx context.Context, id uint) (*model.Equipment, error)
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
}

type equipmentService struct {
	repo repository.EquipmentRepository
}

// NewEquipmentService returns a new instance of EquipmentService
func NewEquipmentService(repo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{repo: repo}
}

func (s *equipmentService) AddEquipment(ctx context.Context, name, description string) (uint, error) {
	if name == "" {
		return 0, errors.New("Название не указано.")
	}
	equipment := &model.Equipment{Name: name, Description: description}
	if err := s.repo.Create(ctx, equipment); err != nil {
		return 0, err
	}
	return equipment.ID, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id uint, name, description string) error {
	equipment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("Оборудование не найдено.")
	}
	if name != "" {
		equipment.Name = name
	}
	if description != "" {
		equipment.Description = description
	}
	return s.repo.Update(ctx, equipment)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id uint) (*model.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	return s.repo.List(ctx)
}
