package usecase

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// OrderUseCase lectura de pedidos y generación del 引当票.
type OrderUseCase struct {
	repo  repository.OrderRepository
	cache *cache.Cache
	slip  ports.AllocationSlipGenerator
}

// NewOrderUseCase construye el caso de uso. slip puede ser nil.
func NewOrderUseCase(repo repository.OrderRepository, c *cache.Cache, slip ports.AllocationSlipGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, cache: c, slip: slip}
}

// List lista pedidos.
func (uc *OrderUseCase) List(ctx context.Context, f entity.OrderFilter) (*dto.OrderListResponse, error) {
	orders, err := cache.Fetch(ctx, uc.cache, orderListKey(f), func(ctx context.Context) ([]entity.Order, error) {
		return uc.repo.List(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return &dto.OrderListResponse{
		Items: orders,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(orders)},
	}, nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return cache.Fetch(ctx, uc.cache, cache.OrderKey(id), func(ctx context.Context) (*entity.Order, error) {
		return uc.repo.GetByID(ctx, id)
	})
}

// Line busca una línea dentro de su pedido.
func (uc *OrderUseCase) Line(ctx context.Context, orderID, lineID int64) (*entity.OrderLine, error) {
	order, err := uc.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range order.Lines {
		if order.Lines[i].ID == lineID {
			return &order.Lines[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// AllocationSlip PDF con las asignaciones del pedido. Siempre lee datos frescos.
func (uc *OrderUseCase) AllocationSlip(ctx context.Context, id int64) ([]byte, error) {
	if uc.slip == nil {
		return nil, domain.ErrUnavailable
	}
	uc.cache.Invalidate(cache.OrderKey(id))
	order, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.slip.GenerateAllocationSlip(ctx, order)
}

func orderListKey(f entity.OrderFilter) string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("status", f.Status)
	set("customer_code", f.CustomerCode)
	set("date_from", f.DateFrom)
	set("date_to", f.DateTo)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return cache.Key(cache.KeyOrders, "list", q.Encode())
}
