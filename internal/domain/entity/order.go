package entity

import "github.com/shopspring/decimal"

// Order pedido de cliente con sus líneas.
type Order struct {
	ID                int64       `json:"id"`
	OrderNumber       string      `json:"order_number"`
	CustomerCode      string      `json:"customer_code"`
	CustomerName      string      `json:"customer_name,omitempty"`
	DeliveryPlaceCode string      `json:"delivery_place_code,omitempty"`
	OrderDate         string      `json:"order_date"`
	Status            string      `json:"status"`
	Lines             []OrderLine `json:"lines,omitempty"`
	Version           int         `json:"version"`
}

// OrderLine línea de pedido: la demanda que se satisface con lotes.
type OrderLine struct {
	ID                int64           `json:"id"`
	OrderID           int64           `json:"order_id"`
	ProductID         int64           `json:"product_id"`
	ProductCode       string          `json:"product_code"`
	ProductName       string          `json:"product_name,omitempty"`
	DeliveryPlaceCode string          `json:"delivery_place_code,omitempty"`
	RequiredQuantity  decimal.Decimal `json:"order_quantity"`
	AllocatedQuantity decimal.Decimal `json:"allocated_quantity"`
	Unit              string          `json:"unit,omitempty"`
	DeliveryDate      string          `json:"delivery_date,omitempty"`
	Status            string          `json:"status"`
	Allocations       []LotAllocation `json:"allocations,omitempty"`
}

// LotAllocation asignación confirmada de un lote a una línea.
type LotAllocation struct {
	ID          int64           `json:"id"`
	LotID       int64           `json:"lot_id"`
	LotNumber   string          `json:"lot_number,omitempty"`
	WarehouseID int64           `json:"warehouse_id,omitempty"`
	Quantity    decimal.Decimal `json:"allocated_quantity"`
	Status      string          `json:"status,omitempty"`
}

// OrderFilter parámetros de búsqueda para GET /orders.
type OrderFilter struct {
	Status       string
	CustomerCode string
	DateFrom     string
	DateTo       string
	Limit        int
	Offset       int
}
