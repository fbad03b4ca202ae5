package entity

import "github.com/shopspring/decimal"

// Estrategias de orden de candidatos del servicio de sugerencias.
const (
	StrategyFEFO = "fefo"
	StrategyFIFO = "fifo"
)

// CandidateQuery identifica la demanda por (customer_code, product_code[, delivery_place_code]).
// El almacén físico es informativo y nunca forma parte de la clave.
type CandidateQuery struct {
	OrderLineID       int64
	ProductID         int64
	CustomerCode      string
	ProductCode       string
	DeliveryPlaceCode string
	Strategy          string
	Limit             int
}

// AllocationCandidate lote elegible, ya ordenado por el servicio externo.
type AllocationCandidate struct {
	LotID             int64           `json:"lot_id"`
	LotNumber         string          `json:"lot_number"`
	ProductID         int64           `json:"product_id"`
	WarehouseID       int64           `json:"warehouse_id"`
	WarehouseCode     string          `json:"warehouse_code,omitempty"`
	CurrentQuantity   decimal.Decimal `json:"current_quantity"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity"`
	LockedQuantity    decimal.Decimal `json:"locked_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	ReceivedDate      string          `json:"received_date,omitempty"`
	ExpiryDate        *string         `json:"expiry_date,omitempty"`
	Rank              int             `json:"rank"`
}

// LotQuantity par lote→cantidad de una asignación.
type LotQuantity struct {
	LotID    int64           `json:"lot_id" validate:"required,gt=0"`
	Quantity decimal.Decimal `json:"quantity" validate:"dgt=0"`
}

// CreateAllocationInput cuerpo de POST /order-lines/{id}/allocations.
type CreateAllocationInput struct {
	Allocations []LotQuantity `json:"allocations" validate:"required,min=1,dive"`
}

// CancelAllocationInput cuerpo de POST /order-lines/{id}/allocations/cancel.
// Sin IDs se cancelan todas las asignaciones de la línea.
type CancelAllocationInput struct {
	AllocationIDs []int64 `json:"allocation_ids,omitempty"`
}

// WarehouseQuantity reparto de una línea por almacén.
type WarehouseQuantity struct {
	WarehouseID int64           `json:"warehouse_id" validate:"required,gt=0"`
	Quantity    decimal.Decimal `json:"quantity" validate:"dgte=0"`
}

// WarehouseAllocationInput cuerpo de POST /order-lines/{id}/warehouse-allocations.
type WarehouseAllocationInput struct {
	Allocations []WarehouseQuantity `json:"allocations" validate:"required,min=1,dive"`
}

// AllocationResult respuesta de las escrituras de asignación.
type AllocationResult struct {
	OrderLineID       int64           `json:"order_line_id"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity"`
	Allocations       []LotAllocation `json:"allocations,omitempty"`
	Message           string          `json:"message,omitempty"`
}

// ManualSuggestionInput cuerpo de POST /allocation-suggestions/manual (drag & drop).
type ManualSuggestionInput struct {
	OrderLineID       int64           `json:"order_line_id" validate:"required,gt=0"`
	LotID             int64           `json:"lot_id" validate:"required,gt=0"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity" validate:"dgt=0"`
}

// ManualSuggestionResult respuesta del servicio de sugerencias manuales.
type ManualSuggestionResult struct {
	ID                int64           `json:"id"`
	OrderLineID       int64           `json:"order_line_id"`
	LotID             int64           `json:"lot_id"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity"`
	Status            string          `json:"status,omitempty"`
	Message           string          `json:"message,omitempty"`
}
