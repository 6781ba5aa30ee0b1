package service

import (
	"backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplyFixture(t *testing.T) (SupplyService, *fakeSupplyRepo) {
	t.Helper()
	ctx := context.Background()
	materials := newFakeMaterialRepo()
	suppliers := newFakeSupplierRepo()
	require.NoError(t, materials.Create(ctx, &model.Material{Name: "Цемент", Unit: "кг"}))
	require.NoError(t, suppliers.Create(ctx, &model.Supplier{Name: "СтройТорг"}))
	supplies := newFakeSupplyRepo()
	return NewSupplyService(supplies, materials, suppliers, nil), supplies
}

func TestAddSupplyAccumulatesProblems(t *testing.T) {
	svc, supplies := newSupplyFixture(t)

	_, err := svc.AddSupply(context.Background(), 0, 0, 0, time.Time{})
	require.Error(t, err)
	assert.Equal(t,
		"Ошибка: материал не выбран. Ошибка: поставщик не выбран. Ошибка: количество должно быть больше нуля.",
		err.Error())
	assert.Empty(t, supplies.supplies, "nothing stored on validation failure")
}

func TestAddSupplyUnknownReferences(t *testing.T) {
	svc, _ := newSupplyFixture(t)

	_, err := svc.AddSupply(context.Background(), 99, 88, 5, time.Time{})
	require.Error(t, err)
	assert.Equal(t, "Ошибка: материал не найден. Ошибка: поставщик не найден.", err.Error())
}

func TestAddSupplyDefaultsDateToNow(t *testing.T) {
	svc, supplies := newSupplyFixture(t)

	id, err := svc.AddSupply(context.Background(), 1, 1, 10, time.Time{})
	require.NoError(t, err)

	stored := supplies.supplies[id]
	require.NotNil(t, stored)
	assert.WithinDuration(t, time.Now(), stored.Date, time.Minute)
}

func TestUpdateSupply(t *testing.T) {
	svc, supplies := newSupplyFixture(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	id, err := svc.AddSupply(ctx, 1, 1, 10, date)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSupply(ctx, id, 1, 1, 25, date))
	assert.Equal(t, 25, supplies.supplies[id].Quantity)

	err = svc.UpdateSupply(ctx, 777, 1, 1, 5, date)
	require.Error(t, err)
	assert.Equal(t, "Поставка не найдена.", err.Error())
}

func TestListSuppliesRendersDate(t *testing.T) {
	svc, _ := newSupplyFixture(t)
	ctx := context.Background()

	_, err := svc.AddSupply(ctx, 1, 1, 10, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows, err := svc.ListSupplies(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "14.03.2026", rows[0].DateHuman)
}

func TestAddSpendValidation(t *testing.T) {
	ctx := context.Background()
	materials := newFakeMaterialRepo()
	require.NoError(t, materials.Create(ctx, &model.Material{Name: "Песок", Unit: "т"}))
	svc := NewSpendService(newFakeSpendRepo(), materials, nil)

	_, err := svc.AddSpend(ctx, 0, -1, time.Time{})
	require.Error(t, err)
	assert.Equal(t, "Ошибка: материал не выбран. Ошибка: количество должно быть больше нуля.", err.Error())

	_, err = svc.AddSpend(ctx, 1, 3, time.Time{})
	assert.NoError(t, err)
}
