package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"
)

// SupplierService defines the business logic for the suppliers dictionary
type SupplierService interface {
	AddSupplier(ctx context.Context, name, contactInfo string) (uint, error)
	UpdateSupplier(ctx context.Context, id uint, name, contactInfo string) error
	DeleteSupplier(ctx context.Context, id uint) (bool, error)
	GetSupplier(ctx context.Context, id uint) (*model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService returns a new instance of SupplierService
func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) AddSupplier(ctx context.Context, name, contactInfo string) (uint, error) {
	if name == "" {
		return 0, errors.New("Название не указано.")
	}
	supplier := &model.Supplier{Name: name, ContactInfo: contactInfo}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return 0, err
	}
	return supplier.ID, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id uint, name, contactInfo string) error {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("Поставщик не найден.")
	}
	if name != "" {
		supplier.Name = name
	}
	if contactInfo != "" {
		supplier.ContactInfo = contactInfo
	}
	return s.repo.Update(ctx, supplier)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *supplierService) GetSupplier(ctx context.Context, id uint) (*model.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.List(ctx)
}
