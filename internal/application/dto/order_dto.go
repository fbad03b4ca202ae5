package dto

import "github.com/jhoicas/lot-allocation-bff/internal/domain/entity"

// OrderListQuery parámetros de GET /api/orders.
type OrderListQuery struct {
	Status       string `query:"status"`
	CustomerCode string `query:"customer_code"`
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	PageRequest
}

// Filter convierte la query al filtro del puerto.
func (q OrderListQuery) Filter() entity.OrderFilter {
	return entity.OrderFilter{
		Status:       q.Status,
		CustomerCode: q.CustomerCode,
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		Limit:        q.Limit,
		Offset:       q.Offset,
	}
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []entity.Order `json:"items"`
	Page  PageResponse   `json:"page"`
}
