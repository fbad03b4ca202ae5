package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

var (
	_ repository.PlanningRepository = (*PlanningRepo)(nil)
	_ repository.SAPRepository      = (*SAPRepo)(nil)
	_ repository.MasterRepository   = (*MasterRepo)(nil)
)

// PlanningRepo adaptador de reposición y pronóstico.
type PlanningRepo struct {
	c *Client
}

// NewPlanningRepository construye el adaptador.
func NewPlanningRepository(c *Client) *PlanningRepo { return &PlanningRepo{c: c} }

// Recommendations GET /admin/replenishment/recommendations.
func (r *PlanningRepo) Recommendations(ctx context.Context, warehouseID string) ([]entity.ReplenishmentRecommendation, error) {
	q := url.Values{}
	setIf(q, "warehouse_id", warehouseID)
	var out listOf[entity.ReplenishmentRecommendation]
	if err := r.c.do(ctx, http.MethodGet, "/admin/replenishment/recommendations", q, nil, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// RunReplenishment POST /admin/replenishment/recommendations/run.
func (r *PlanningRepo) RunReplenishment(ctx context.Context, in entity.ReplenishmentRun) ([]entity.ReplenishmentRecommendation, error) {
	var out listOf[entity.ReplenishmentRecommendation]
	if err := r.c.do(ctx, http.MethodPost, "/admin/replenishment/recommendations/run", nil, in, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// Forecast GET /admin/demand/forecast.
func (r *PlanningRepo) Forecast(ctx context.Context, f entity.ForecastFilter) ([]entity.DemandForecast, error) {
	q := url.Values{}
	setIf(q, "product_id", f.ProductID)
	setIf(q, "date_from", f.DateFrom)
	setIf(q, "date_to", f.DateTo)
	var out listOf[entity.DemandForecast]
	if err := r.c.do(ctx, http.MethodGet, "/admin/demand/forecast", q, nil, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// SAPRepo adaptador de la integración SAP.
type SAPRepo struct {
	c *Client
}

// NewSAPRepository construye el adaptador.
func NewSAPRepository(c *Client) *SAPRepo { return &SAPRepo{c: c} }

// RegisterSalesOrders POST /integration/sap/sales-orders.
func (r *SAPRepo) RegisterSalesOrders(ctx context.Context, orders []entity.SAPSalesOrder) (*entity.SAPRegisterResult, error) {
	body := struct {
		Orders []entity.SAPSalesOrder `json:"orders"`
	}{Orders: orders}
	var res entity.SAPRegisterResult
	if err := r.c.do(ctx, http.MethodPost, "/integration/sap/sales-orders", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MasterRepo adaptador de acciones masivas sobre maestros.
type MasterRepo struct {
	c *Client
}

// NewMasterRepository construye el adaptador.
func NewMasterRepository(c *Client) *MasterRepo { return &MasterRepo{c: c} }

// BulkDelete POST /masters/{resource}/bulk-delete.
func (r *MasterRepo) BulkDelete(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error) {
	return r.bulk(ctx, resource, "bulk-delete", items)
}

// BulkRestore POST /masters/{resource}/bulk-restore.
func (r *MasterRepo) BulkRestore(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error) {
	return r.bulk(ctx, resource, "bulk-restore", items)
}

func (r *MasterRepo) bulk(ctx context.Context, resource, action string, items []entity.BulkItem) (*entity.BulkResult, error) {
	body := struct {
		Items []entity.BulkItem `json:"items"`
	}{Items: items}
	var res entity.BulkResult
	path := "/masters/" + url.PathEscape(resource) + "/" + action
	if err := r.c.do(ctx, http.MethodPost, path, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
