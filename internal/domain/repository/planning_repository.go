package repository

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// PlanningRepository lecturas de reposición y pronóstico calculados por el backend.
type PlanningRepository interface {
	Recommendations(ctx context.Context, warehouseID string) ([]entity.ReplenishmentRecommendation, error)
	RunReplenishment(ctx context.Context, in entity.ReplenishmentRun) ([]entity.ReplenishmentRecommendation, error)
	Forecast(ctx context.Context, f entity.ForecastFilter) ([]entity.DemandForecast, error)
}

// SAPRepository integración de pedidos de venta SAP.
type SAPRepository interface {
	RegisterSalesOrders(ctx context.Context, orders []entity.SAPSalesOrder) (*entity.SAPRegisterResult, error)
}

// MasterRepository acciones masivas sobre maestros con control optimista por versión.
type MasterRepository interface {
	BulkDelete(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error)
	BulkRestore(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error)
}
