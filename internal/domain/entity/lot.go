package entity

import "github.com/shopspring/decimal"

// Estados de lote reconocidos por el backend.
const (
	LotStatusAvailable = "available"
	LotStatusEmpty     = "empty"
	LotStatusExpired   = "expired"
	LotStatusQCHold    = "qc_hold"
	LotStatusRejected  = "rejected"
	LotStatusArchived  = "archived"
)

// Lot representa un lote físico de stock con su propio libro de cantidades.
// Las cantidades viajan como strings decimales para no perder precisión.
type Lot struct {
	ID                int64           `json:"id"`
	ProductID         int64           `json:"product_id"`
	ProductCode       string          `json:"product_code"`
	ProductName       string          `json:"product_name"`
	SupplierID        *int64          `json:"supplier_id,omitempty"`
	SupplierCode      string          `json:"supplier_code,omitempty"`
	SupplierName      string          `json:"supplier_name,omitempty"`
	WarehouseID       int64           `json:"warehouse_id"`
	WarehouseCode     string          `json:"warehouse_code,omitempty"`
	WarehouseName     string          `json:"warehouse_name,omitempty"`
	LotNumber         string          `json:"lot_number"`
	CurrentQuantity   decimal.Decimal `json:"current_quantity"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity"`
	LockedQuantity    decimal.Decimal `json:"locked_quantity"`
	Unit              string          `json:"unit,omitempty"`
	ReceivedDate      string          `json:"received_date"`         // YYYY-MM-DD
	ExpiryDate        *string         `json:"expiry_date,omitempty"` // YYYY-MM-DD
	Status            string          `json:"status"`
	Version           int             `json:"version"`
}

// LotFilter parámetros de búsqueda para GET /lots.
type LotFilter struct {
	ProductID   string
	SupplierID  string
	WarehouseID string
	Status      string
	WithStock   bool
	Limit       int
	Offset      int
}

// LotInput cuerpo de alta/edición de lote.
type LotInput struct {
	ProductID       int64           `json:"product_id" validate:"required,gt=0"`
	SupplierID      *int64          `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	WarehouseID     int64           `json:"warehouse_id" validate:"required,gt=0"`
	LotNumber       string          `json:"lot_number" validate:"required,max=100"`
	CurrentQuantity decimal.Decimal `json:"current_quantity" validate:"dgte=0"`
	Unit            string          `json:"unit,omitempty" validate:"max=20"`
	ReceivedDate    string          `json:"received_date" validate:"required,isodate"`
	ExpiryDate      *string         `json:"expiry_date,omitempty" validate:"omitempty,isodate"`
	Status          string          `json:"status,omitempty" validate:"omitempty,oneof=available empty expired qc_hold rejected archived"`
	Version         *int            `json:"version,omitempty"`
}

// LotLockInput cuerpo para bloquear/desbloquear cantidad de un lote.
type LotLockInput struct {
	Quantity *decimal.Decimal `json:"quantity,omitempty" validate:"omitempty,dgt=0"`
	Reason   string           `json:"reason,omitempty" validate:"max=200"`
}
