package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleLots() []entity.Lot {
	return []entity.Lot{
		{ID: 1, ProductID: 1, ProductCode: "B", SupplierCode: "S1", CurrentQuantity: d("10"), AllocatedQuantity: d("3"), LockedQuantity: d("2")},
		{ID: 2, ProductID: 2, ProductCode: "A", CurrentQuantity: d("1"), AllocatedQuantity: d("5")},
	}
}

func newLotUC(repo *fakeLotRepo) (*usecase.LotUseCase, *cache.Cache) {
	c := cache.New()
	return usecase.NewLotUseCase(repo, c, inventory.NewLotGrouper(language.Japanese)), c
}

func TestLotUseCase_ListCalculaDisponible(t *testing.T) {
	uc, _ := newLotUC(&fakeLotRepo{lots: sampleLots()})

	resp, err := uc.List(context.Background(), entity.LotFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].AvailableQuantity.Equal(d("5")))
	assert.True(t, resp.Items[1].AvailableQuantity.IsZero(), "nunca negativo")
}

func TestLotUseCase_EscrituraInvalidaLista(t *testing.T) {
	repo := &fakeLotRepo{lots: sampleLots()}
	uc, _ := newLotUC(repo)
	ctx := context.Background()

	_, err := uc.List(ctx, entity.LotFilter{})
	require.NoError(t, err)
	_, err = uc.Grouped(ctx, entity.LotFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "la lista agrupada reutiliza la cacheada")

	q := d("1")
	_, err = uc.Lock(ctx, 1, entity.LotLockInput{Quantity: &q})
	require.NoError(t, err)

	_, err = uc.List(ctx, entity.LotFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestLotUseCase_GroupedOrdenaPorCodigo(t *testing.T) {
	uc, _ := newLotUC(&fakeLotRepo{lots: sampleLots()})
	resp, err := uc.Grouped(context.Background(), entity.LotFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "A", resp.Groups[0].ProductCode)
	assert.Equal(t, "2:unknown", resp.Groups[0].Key)
}

func TestLotUseCase_UpdateValidaAntesDeEnviar(t *testing.T) {
	repo := &fakeLotRepo{}
	uc, _ := newLotUC(repo)

	_, err := uc.Update(context.Background(), 1, entity.LotInput{ProductID: 1, WarehouseID: 1, LotNumber: "L1", CurrentQuantity: d("-1"), ReceivedDate: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.updated)
}

func TestLotUseCase_GetByIDNoEncontrado(t *testing.T) {
	uc, _ := newLotUC(&fakeLotRepo{})
	_, err := uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
