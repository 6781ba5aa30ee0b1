package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"context"
	"errors"
)

// MaterialService defines the business logic for the materials dictionary
type MaterialService interface {
	AddMaterial(ctx context.Context, name, unit string) (uint, error)
	UpdateMaterial(ctx context.Context, id uint, name, unit string) error
	DeleteMaterial(ctx context.Context, id uint) (bool, error)
	GetMaterial(ctx context.Context, id uint) (*model.Material, error)
	ListMaterials(ctx context.Context) ([]model.Material, error)
}

type materialService struct {
	repo repository.MaterialRepository
	hub  *websocket.Hub
}

// NewMaterialService returns a new instance of MaterialService
func NewMaterialService(repo repository.MaterialRepository, hub *websocket.Hub) MaterialService {
	return &materialService{repo: repo, hub: hub}
}

func (s *materialService) AddMaterial(ctx context.Context, name, unit string) (uint, error) {
	if name == "" {
		return 0, errors.New("Название не указано.")
	}
	material := &model.Material{Name: name, Unit: unit}
	if err := s.repo.Create(ctx, material); err != nil {
		return 0, err
	}
	s.hub.Notify("material_added", map[string]interface{}{"id": material.ID, "name": material.Name})
	return material.ID, nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, id uint, name, unit string) error {
	material, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("Материал не найден.")
	}
	if name != "" {
		material.Name = name
	}
	if unit != "" {
		material.Unit = unit
	}
	if err := s.repo.Update(ctx, material); err != nil {
		return err
	}
	s.hub.Notify("material_updated", map[string]interface{}{"id": material.ID, "name": material.Name})
	return nil
}

func (s *materialService) DeleteMaterial(ctx context.Context, id uint) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if removed {
		s.hub.Notify("material_deleted", map[string]interface{}{"id": id})
	}
	return removed, err
}

func (s *materialService) GetMaterial(ctx context.Context, id uint) (*model.Material, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *materialService) ListMaterials(ctx context.Context) ([]model.Material, error) {
	return s.repo.List(ctx)
}
