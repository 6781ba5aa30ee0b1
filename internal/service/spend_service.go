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

// SpendService defines the business logic for consumption records
type SpendService interface {
	AddSpend(ctx context.Context, materialID uint, quantity int, date time.Time) (uint, error)
	UpdateSpend(ctx context.Context, id, materialID uint, quantity int, date time.Time) error
	DeleteSpend(ctx context.Context, id uint) (bool, error)
	GetSpend(ctx context.Context, id uint) (*model.Spend, error)
	ListSpends(ctx context.Context) ([]repository.SpendRow, error)
}

type spendService struct {
	spends    repository.SpendRepository
	materials repository.MaterialRepository
	hub       *websocket.Hub
}

// NewSpendService returns a new instance of SpendService
func NewSpendService(spends repository.SpendRepository, materials repository.MaterialRepository, hub *websocket.Hub) SpendService {
	return &spendService{spends: spends, materials: materials, hub: hub}
}

func (s *spendService) checkSpend(ctx context.Context, materialID uint, quantity int) error {
	var problems []string
	if materialID == 0 {
		problems = append(problems, "Ошибка: материал не выбран.")
	} else if _, err := s.materials.GetByID(ctx, materialID); err != nil {
		problems = append(problems, "Ошибка: материал не найден.")
	}
	if quantity <= 0 {
		problems = append(problems, "Ошибка: количество должно быть больше нуля.")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, " "))
	}
	return nil
}

func (s *spendService) AddSpend(ctx context.Context, materialID uint, quantity int, date time.Time) (uint, error) {
	if err := s.checkSpend(ctx, materialID, quantity); err != nil {
		return 0, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	spend := &model.Spend{MaterialID: materialID, Quantity: quantity, Date: date}
	if err := s.spends.Create(ctx, spend); err != nil {
		return 0, err
	}
	s.hub.Notify("spend_added", map[string]interface{}{
		"id": spend.ID, "material_id": materialID, "quantity": quantity,
	})
	return spend.ID, nil
}

func (s *spendService) UpdateSpend(ctx context.Context, id, materialID uint, quantity int, date time.Time) error {
	spend, err := s.spends.GetByID(ctx, id)
	if err != nil {
		return errors.New("Запись о расходе не найдена.")
	}
	if err := s.checkSpend(ctx, materialID, quantity); err != nil {
		return err
	}
	spend.MaterialID = materialID
	spend.Quantity = quantity
	if !date.IsZero() {
		spend.Date = date
	}
	if err := s.spends.Update(ctx, spend); err != nil {
		return err
	}
	s.hub.Notify("spend_updated", map[string]interface{}{
		"id": spend.ID, "material_id": materialID, "quantity": quantity,
	})
	return nil
}

func (s *spendService) DeleteSpend(ctx context.Context, id uint) (bool, error) {
	removed, err := s.spends.Delete(ctx, id)
	if removed {
		s.hub.Notify("spend_deleted", map[string]interface{}{"id": id})
	}
	return removed, err
}

func (s *spendService) GetSpend(ctx context.Context, id uint) (*model.Spend, error) {
	return s.spends.GetByID(ctx, id)
}

func (s *spendService) ListSpends(ctx context.Context) ([]repository.SpendRow, error) {
	rows, err := s.spends.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DateHuman = rows[i].Date.Format(DisplayDate)
	}
	return rows, nil
}
