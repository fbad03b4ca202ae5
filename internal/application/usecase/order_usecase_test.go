package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

func orderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]entity.Order{
		1: {ID: 1, OrderNumber: "SO-1", Lines: []entity.OrderLine{{ID: 11, ProductID: 5}, {ID: 12, ProductID: 6}}},
	}}
}

func TestOrderUseCase_LineBuscaEnElPedido(t *testing.T) {
	repo := orderRepo()
	uc := usecase.NewOrderUseCase(repo, cache.New(), nil)
	ctx := context.Background()

	line, err := uc.Line(ctx, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 6, line.ProductID)

	_, err = uc.Line(ctx, 1, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, repo.getCalls, "el detalle se cachea")
}

func TestOrderUseCase_AllocationSlipLeeDatosFrescos(t *testing.T) {
	repo := orderRepo()
	slip := &fakeSlip{}
	uc := usecase.NewOrderUseCase(repo, cache.New(), slip)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)

	pdf, err := uc.AllocationSlip(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Equal(t, "SO-1", slip.order.OrderNumber)
	assert.Equal(t, 2, repo.getCalls)
}

func TestOrderUseCase_SinGeneradorNoDisponible(t *testing.T) {
	uc := usecase.NewOrderUseCase(orderRepo(), cache.New(), nil)
	_, err := uc.AllocationSlip(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
