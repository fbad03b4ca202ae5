package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

func TestPlanningUseCase_RunInvalidaRecomendaciones(t *testing.T) {
	repo := &fakePlanningRepo{}
	uc := usecase.NewPlanningUseCase(repo, cache.New())
	ctx := context.Background()

	_, err := uc.Recommendations(ctx, "1")
	require.NoError(t, err)
	_, err = uc.Recommendations(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.recCalls)

	recs, err := uc.Run(ctx, entity.ReplenishmentRun{AsOfDate: "2024-05-01"})
	require.NoError(t, err)
	assert.NotNil(t, recs)

	_, err = uc.Recommendations(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.recCalls)
}

func TestPlanningUseCase_RunFechaInvalida(t *testing.T) {
	repo := &fakePlanningRepo{}
	_, err := usecase.NewPlanningUseCase(repo, cache.New()).Run(context.Background(), entity.ReplenishmentRun{AsOfDate: "01/05/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.runs)
}

func TestSAPUseCase_NotificaResultado(t *testing.T) {
	order := entity.SAPSalesOrder{
		SalesOrderNumber: "4500001", CustomerCode: "C1", OrderDate: "2024-05-01",
		Lines: []entity.SAPSalesOrderLine{{ItemNumber: "10", ProductCode: "P1", Quantity: d("2"), DeliveryDate: "2024-05-10"}},
	}
	rec := &recorder{}
	res, err := usecase.NewSAPUseCase(&fakeSAPRepo{}, cache.New(), rec).Register(context.Background(), []entity.SAPSalesOrder{order})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Registered)
	assert.Equal(t, []string{"success:SAP受注を1件登録しました"}, rec.msgs)

	rec = &recorder{}
	_, err = usecase.NewSAPUseCase(&fakeSAPRepo{err: errors.New("502")}, cache.New(), rec).Register(context.Background(), []entity.SAPSalesOrder{order})
	require.Error(t, err)
	assert.Equal(t, []string{"error:SAP受注の登録に失敗しました: 502"}, rec.msgs)
}

func TestSAPUseCase_LineaSinCantidad(t *testing.T) {
	order := entity.SAPSalesOrder{
		SalesOrderNumber: "1", CustomerCode: "C1", OrderDate: "2024-05-01",
		Lines: []entity.SAPSalesOrderLine{{ItemNumber: "10", ProductCode: "P1", DeliveryDate: "2024-05-10"}},
	}
	_, err := usecase.NewSAPUseCase(&fakeSAPRepo{}, cache.New(), nil).Register(context.Background(), []entity.SAPSalesOrder{order})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
