package dto

import (
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// LotListQuery parámetros de GET /api/lots.
type LotListQuery struct {
	ProductID   string `query:"product_id"`
	SupplierID  string `query:"supplier_id"`
	WarehouseID string `query:"warehouse_id"`
	Status      string `query:"status"`
	WithStock   bool   `query:"with_stock"`
	PageRequest
}

// Filter convierte la query al filtro del puerto.
func (q LotListQuery) Filter() entity.LotFilter {
	return entity.LotFilter{
		ProductID:   q.ProductID,
		SupplierID:  q.SupplierID,
		WarehouseID: q.WarehouseID,
		Status:      q.Status,
		WithStock:   q.WithStock,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}

// LotResponse lote con su cantidad disponible calculada.
type LotResponse struct {
	entity.Lot
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
}

// LotListResponse lista de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// GroupedLotsResponse lotes agrupados por producto y proveedor.
type GroupedLotsResponse struct {
	Groups []inventory.ProductGroup `json:"groups"`
}
