package dto

import (
	"time"

	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// SessionResponse sesión de asignación creada.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignLotRequest cantidad de un lote en la línea; cero quita el lote.
type AssignLotRequest struct {
	Quantity         decimal.Decimal  `json:"quantity" validate:"dgte=0"`
	RequiredQuantity *decimal.Decimal `json:"required_quantity,omitempty" validate:"omitempty,dgte=0"`
}

// SaveLineRequest confirma el borrador de la línea.
type SaveLineRequest struct {
	ProductID int64 `json:"product_id" validate:"gte=0"`
}

// CancelLineRequest cancela la línea.
type CancelLineRequest struct {
	ProductID     int64   `json:"product_id" validate:"gte=0"`
	AllocationIDs []int64 `json:"allocation_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// WarehouseAllocationRequest reparto de la línea por almacén.
type WarehouseAllocationRequest struct {
	ProductID   int64                      `json:"product_id" validate:"gte=0"`
	Allocations []entity.WarehouseQuantity `json:"allocations"`
}

// DragAssignRequest lote soltado sobre una línea.
type DragAssignRequest struct {
	OrderLineID int64           `json:"order_line_id"`
	LotID       int64           `json:"lot_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// LineResponse estado local de la línea, opcionalmente con la respuesta del backend.
type LineResponse struct {
	allocation.LineSnapshot
	Result *entity.AllocationResult `json:"result,omitempty"`
}

// ToastResponse mensaje activo; nil si no hay.
type ToastResponse struct {
	Message *allocation.Message `json:"message"`
}

// SessionStateResponse estado de la sesión: filtros y toast activo.
type SessionStateResponse struct {
	SessionResponse
	Filters inventory.FilterSelection `json:"filters"`
	Toast   *allocation.Message       `json:"toast"`
}

// CandidateQuery parámetros de GET .../lines/{lineId}/candidates.
type CandidateQuery struct {
	ProductID         int64  `query:"product_id" validate:"gte=0"`
	CustomerCode      string `query:"customer_code"`
	ProductCode       string `query:"product_code"`
	DeliveryPlaceCode string `query:"delivery_place_code"`
	Strategy          string `query:"strategy" validate:"omitempty,oneof=fefo fifo"`
	Limit             int    `query:"limit" validate:"min=0,max=500"`
}

// Query convierte los parámetros a la consulta del puerto.
func (q CandidateQuery) Query() entity.CandidateQuery {
	return entity.CandidateQuery{
		ProductID:         q.ProductID,
		CustomerCode:      q.CustomerCode,
		ProductCode:       q.ProductCode,
		DeliveryPlaceCode: q.DeliveryPlaceCode,
		Strategy:          q.Strategy,
		Limit:             q.Limit,
	}
}
