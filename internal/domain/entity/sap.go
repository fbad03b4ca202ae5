package entity

import "github.com/shopspring/decimal"

// SAPSalesOrderLine posición de un pedido de venta SAP.
type SAPSalesOrderLine struct {
	ItemNumber   string          `json:"item_number" validate:"required"`
	ProductCode  string          `json:"product_code" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"dgt=0"`
	Unit         string          `json:"unit,omitempty"`
	DeliveryDate string          `json:"delivery_date" validate:"required,isodate"`
}

// SAPSalesOrder pedido de venta enviado a la integración SAP.
type SAPSalesOrder struct {
	SalesOrderNumber  string              `json:"sales_order_number" validate:"required"`
	CustomerCode      string              `json:"customer_code" validate:"required"`
	DeliveryPlaceCode string              `json:"delivery_place_code,omitempty"`
	OrderDate         string              `json:"order_date" validate:"required,isodate"`
	Lines             []SAPSalesOrderLine `json:"lines" validate:"required,min=1,dive"`
}

// SAPRegisterResult resultado de registrar pedidos SAP.
type SAPRegisterResult struct {
	Registered int      `json:"registered"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}
