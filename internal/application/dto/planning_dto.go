package dto

import "github.com/jhoicas/lot-allocation-bff/internal/domain/entity"

// ForecastQuery parámetros de GET /api/forecast.
type ForecastQuery struct {
	ProductID string `query:"product_id"`
	DateFrom  string `query:"date_from" validate:"omitempty,isodate"`
	DateTo    string `query:"date_to" validate:"omitempty,isodate"`
}

// Filter convierte la query al filtro del puerto.
func (q ForecastQuery) Filter() entity.ForecastFilter {
	return entity.ForecastFilter{ProductID: q.ProductID, DateFrom: q.DateFrom, DateTo: q.DateTo}
}

// SAPSalesOrdersRequest pedidos SAP a registrar.
type SAPSalesOrdersRequest struct {
	Orders []entity.SAPSalesOrder `json:"orders"`
}
