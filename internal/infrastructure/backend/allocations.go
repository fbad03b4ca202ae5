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

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo adaptador de candidatos, escrituras por línea y sugerencias manuales.
type AllocationRepo struct {
	c *Client
}

// NewAllocationRepository construye el adaptador.
func NewAllocationRepository(c *Client) *AllocationRepo { return &AllocationRepo{c: c} }

// Candidates GET /allocation-candidates. La identidad de la demanda es
// (customer_code, product_code[, delivery_place_code]); el almacén no se envía.
func (r *AllocationRepo) Candidates(ctx context.Context, cq entity.CandidateQuery) ([]entity.AllocationCandidate, error) {
	q := url.Values{}
	if cq.OrderLineID > 0 {
		q.Set("order_line_id", strconv.FormatInt(cq.OrderLineID, 10))
	}
	if cq.ProductID > 0 {
		q.Set("product_id", strconv.FormatInt(cq.ProductID, 10))
	}
	setIf(q, "customer_code", cq.CustomerCode)
	setIf(q, "product_code", cq.ProductCode)
	setIf(q, "delivery_place_code", cq.DeliveryPlaceCode)
	setIf(q, "strategy", cq.Strategy)
	if cq.Limit > 0 {
		q.Set("limit", strconv.Itoa(cq.Limit))
	}
	var out listOf[entity.AllocationCandidate]
	if err := r.c.do(ctx, http.MethodGet, "/allocation-candidates", q, nil, &out); err != nil {
		return nil, err
	}
	return out.slice(), nil
}

// CreateAllocations POST /order-lines/{id}/allocations.
func (r *AllocationRepo) CreateAllocations(ctx context.Context, lineID int64, in entity.CreateAllocationInput) (*entity.AllocationResult, error) {
	return r.lineWrite(ctx, fmt.Sprintf("/order-lines/%d/allocations", lineID), lineID, in)
}

// CancelAllocations POST /order-lines/{id}/allocations/cancel.
func (r *AllocationRepo) CancelAllocations(ctx context.Context, lineID int64, in entity.CancelAllocationInput) (*entity.AllocationResult, error) {
	return r.lineWrite(ctx, fmt.Sprintf("/order-lines/%d/allocations/cancel", lineID), lineID, in)
}

// SaveWarehouseAllocations POST /order-lines/{id}/warehouse-allocations.
func (r *AllocationRepo) SaveWarehouseAllocations(ctx context.Context, lineID int64, in entity.WarehouseAllocationInput) (*entity.AllocationResult, error) {
	return r.lineWrite(ctx, fmt.Sprintf("/order-lines/%d/warehouse-allocations", lineID), lineID, in)
}

func (r *AllocationRepo) lineWrite(ctx context.Context, path string, lineID int64, body any) (*entity.AllocationResult, error) {
	var res entity.AllocationResult
	if err := r.c.do(ctx, http.MethodPost, path, nil, body, &res); err != nil {
		return nil, err
	}
	if res.OrderLineID == 0 {
		res.OrderLineID = lineID
	}
	return &res, nil
}

// CreateManualSuggestion POST /allocation-suggestions/manual.
func (r *AllocationRepo) CreateManualSuggestion(ctx context.Context, in entity.ManualSuggestionInput) (*entity.ManualSuggestionResult, error) {
	var res entity.ManualSuggestionResult
	if err := r.c.do(ctx, http.MethodPost, "/allocation-suggestions/manual", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
