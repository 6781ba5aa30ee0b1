package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"context"
	"errors"
	"strings"
	"time"
)

// SupplyService defines the business logic for material receipts
type SupplyService interface {
	AddSupply(ctx context.Context, materialID, supplierID uint, quantity int, date time.Time) (uint, error)
	UpdateSupply(ctx context.Context, id, materialID, supplierID uint, quantity int, date time.Time) error
	DeleteSupply(ctx context.Context, id uint) (bool, error)
	GetSupply(ctx context.Context, id uint) (*model.Supply, error)
	ListSupplies(ctx context.Context) ([]repository.SupplyRow, error)
}

type supplyService struct {
	supplies  repository.SupplyRepository
	materials repository.MaterialRepository
	suppliers repository.SupplierRepository
	hub       *websocket.Hub
}

// NewSupplyService returns a new instance of SupplyService
func NewSupplyService(supplies repository.SupplyRepository, materials repository.MaterialRepository, suppliers repository.SupplierRepository, hub *websocket.Hub) SupplyService {
	return &supplyService{supplies: supplies, materials: materials, suppliers: suppliers, hub: hub}
}

// checkSupply collects every validation problem into a single message so the
// form can show them all at once.
func (s *supplyService) checkSupply(ctx context.Context, materialID, supplierID uint, quantity int) error {
	var problems []string
	if materialID == 0 {
		problems = append(problems, "Ошибка: материал не выбран.")
	} else if _, err := s.materials.GetByID(ctx, materialID); err != nil {
		problems = append(problems, "Ошибка: материал не найден.")
	}
	if supplierID == 0 {
		problems = append(problems, "Ошибка: поставщик не выбран.")
	} else if _, err := s.suppliers.GetByID(ctx, supplierID); err != nil {
		problems = append(problems, "Ошибка: поставщик не найден.")
	}
	if quantity <= 0 {
		problems = append(problems, "Ошибка: количество должно быть больше нуля.")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, " "))
	}
	return nil
}

func (s *supplyService) AddSupply(ctx context.Context, materialID, supplierID uint, quantity int, date time.Time) (uint, error) {
	if err := s.checkSupply(ctx, materialID, supplierID, quantity); err != nil {
		return 0, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	supply := &model.Supply{MaterialID: materialID, SupplierID: supplierID, Quantity: quantity, Date: date}
	if err := s.supplies.Create(ctx, supply); err != nil {
		return 0, err
	}
	s.hub.Notify("supply_added", map[string]interface{}{
		"id": supply.ID, "material_id": materialID, "quantity": quantity,
	})
	return supply.ID, nil
}

func (s *supplyService) UpdateSupply(ctx context.Context, id, materialID, supplierID uint, quantity int, date time.Time) error {
	supply, err := s.supplies.GetByID(ctx, id)
	if err != nil {
		return errors.New("Поставка не найдена.")
	}
	if err := s.checkSupply(ctx, materialID, supplierID, quantity); err != nil {
		return err
	}
	supply.MaterialID = materialID
	supply.SupplierID = supplierID
	supply.Quantity = quantity
	if !date.IsZero() {
		supply.Date = date
	}
	if err := s.supplies.Update(ctx, supply); err != nil {
		return err
	}
	s.hub.Notify("supply_updated", map[string]interface{}{
		"id": supply.ID, "material_id": materialID, "quantity": quantity,
	})
	return nil
}

func (s *supplyService) DeleteSupply(ctx context.Context, id uint) (bool, error) {
	removed, err := s.supplies.Delete(ctx, id)
	if removed {
		s.hub.Notify("supply_deleted", map[string]interface{}{"id": id})
	}
	return removed, err
}

func (s *supplyService) GetSupply(ctx context.Context, id uint) (*model.Supply, error) {
	return s.supplies.GetByID(ctx, id)
}

func (s *supplyService) ListSupplies(ctx context.Context) ([]repository.SupplyRow, error) {
	rows, err := s.supplies.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DateHuman = rows[i].Date.Format(DisplayDate)
	}
	return rows, nil
}
