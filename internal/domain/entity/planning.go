package entity

import "github.com/shopspring/decimal"

// ReplenishmentRecommendation sugerencia de reposición calculada por el backend.
type ReplenishmentRecommendation struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	ProductCode     string          `json:"product_code"`
	WarehouseID     int64           `json:"warehouse_id"`
	SupplierID      *int64          `json:"supplier_id,omitempty"`
	RecommendedQty  decimal.Decimal `json:"recommended_order_qty"`
	AvailableStock  decimal.Decimal `json:"available_stock"`
	SafetyStock     decimal.Decimal `json:"safety_stock"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
	LeadTimeDays    int             `json:"lead_time_days"`
	RecommendedDate string          `json:"recommended_order_date,omitempty"`
	Status          string          `json:"status,omitempty"`
	Explanation     string          `json:"explanation,omitempty"`
}

// ReplenishmentRun petición de recálculo de recomendaciones.
type ReplenishmentRun struct {
	WarehouseID *int64  `json:"warehouse_id,omitempty" validate:"omitempty,gt=0"`
	ProductIDs  []int64 `json:"product_ids,omitempty" validate:"omitempty,dive,gt=0"`
	AsOfDate    string  `json:"as_of_date,omitempty" validate:"omitempty,isodate"`
}

// DemandForecast pronóstico diario de demanda (solo lectura).
type DemandForecast struct {
	ProductID    int64           `json:"product_id"`
	CustomerCode string          `json:"customer_code,omitempty"`
	ForecastDate string          `json:"forecast_date"`
	Quantity     decimal.Decimal `json:"forecast_quantity"`
	Unit         string          `json:"unit,omitempty"`
}

// ForecastFilter parámetros de GET /admin/demand/forecast.
type ForecastFilter struct {
	ProductID string
	DateFrom  string
	DateTo    string
}
