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

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo adaptador de /lots.
type LotRepo struct {
	c *Client
}

// NewLotRepository construye el adaptador.
func NewLotRepository(c *Client) *LotRepo { return &LotRepo{c: c} }

// List GET /lots.
func (r *LotRepo) List(ctx context.Context, f entity.LotFilter) ([]entity.Lot, error) {
	q := url.Values{}
	setIf(q, "product_id", f.ProductID)
	setIf(q, "supplier_id", f.SupplierID)
	setIf(q, "warehouse_id", f.WarehouseID)
	setIf(q, "status", f.Status)
	if f.WithStock {
		q.Set("with_stock", "true")
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("skip", strconv.Itoa(f.Offset))
	}
	var out listOf[entity.Lot]
	if err := r.c.do(ctx, http.MethodGet, "/lots", q, nil, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// GetByID GET /lots/{id}.
func (r *LotRepo) GetByID(ctx context.Context, id int64) (*entity.Lot, error) {
	var lot entity.Lot
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/lots/%d", id), nil, nil, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

// Create POST /lots.
func (r *LotRepo) Create(ctx context.Context, in entity.LotInput) (*entity.Lot, error) {
	var lot entity.Lot
	if err := r.c.do(ctx, http.MethodPost, "/lots", nil, in, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

// Update PUT /lots/{id}.
func (r *LotRepo) Update(ctx context.Context, id int64, in entity.LotInput) (*entity.Lot, error) {
	var lot entity.Lot
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/lots/%d", id), nil, in, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

// Lock POST /lots/{id}/lock.
func (r *LotRepo) Lock(ctx context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error) {
	var lot entity.Lot
	if err := r.c.do(ctx, http.MethodPost, fmt.Sprintf("/lots/%d/lock", id), nil, in, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

// Unlock POST /lots/{id}/unlock.
func (r *LotRepo) Unlock(ctx context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error) {
	var lot entity.Lot
	if err := r.c.do(ctx, http.MethodPost, fmt.Sprintf("/lots/%d/unlock", id), nil, in, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}
