package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo adaptador de /orders.
type OrderRepo struct {
	c *Client
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(c *Client) *OrderRepo { return &OrderRepo{c: c} }

// List GET /orders.
func (r *OrderRepo) List(ctx context.Context, f entity.OrderFilter) ([]entity.Order, error) {
	q := url.Values{}
	setIf(q, "status", f.Status)
	setIf(q, "customer_code", f.CustomerCode)
	setIf(q, "date_from", f.DateFrom)
	setIf(q, "date_to", f.DateTo)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("skip", strconv.Itoa(f.Offset))
	}
	var out listOf[entity.Order]
	if err := r.c.do(ctx, http.MethodGet, "/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// GetByID GET /orders/{id}.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var o entity.Order
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
