package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// LotUseCase lectura cacheada y escrituras de lotes.
type LotUseCase struct {
	repo    repository.LotRepository
	cache   *cache.Cache
	grouper *inventory.LotGrouper
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, c *cache.Cache, grouper *inventory.LotGrouper) *LotUseCase {
	return &LotUseCase{repo: repo, cache: c, grouper: grouper}
}

// Lots lista cruda de lotes (cacheada por filtro).
func (uc *LotUseCase) Lots(ctx context.Context, f entity.LotFilter) ([]entity.Lot, error) {
	return cache.Fetch(ctx, uc.cache, lotListKey(f), func(ctx context.Context) ([]entity.Lot, error) {
		return uc.repo.List(ctx, f)
	})
}

// List lista lotes con la cantidad disponible calculada.
func (uc *LotUseCase) List(ctx context.Context, f entity.LotFilter) (*dto.LotListResponse, error) {
	lots, err := uc.Lots(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, toLotResponse(l))
	}
	return &dto.LotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(items)},
	}, nil
}

// Grouped lista lotes agrupados por producto y proveedor.
func (uc *LotUseCase) Grouped(ctx context.Context, f entity.LotFilter) (*dto.GroupedLotsResponse, error) {
	lots, err := uc.Lots(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.GroupedLotsResponse{Groups: uc.grouper.Group(lots)}, nil
}

// GetByID obtiene un lote.
func (uc *LotUseCase) GetByID(ctx context.Context, id int64) (*dto.LotResponse, error) {
	lot, err := cache.Fetch(ctx, uc.cache, cache.Key(cache.KeyLots, id), func(ctx context.Context) (*entity.Lot, error) {
		return uc.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	resp := toLotResponse(*lot)
	return &resp, nil
}

// Create da de alta un lote.
func (uc *LotUseCase) Create(ctx context.Context, in entity.LotInput) (*dto.LotResponse, error) {
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return uc.write(ctx, func(ctx context.Context) (*entity.Lot, error) { return uc.repo.Create(ctx, in) })
}

// Update edita un lote; el backend valida la versión.
func (uc *LotUseCase) Update(ctx context.Context, id int64, in entity.LotInput) (*dto.LotResponse, error) {
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return uc.write(ctx, func(ctx context.Context) (*entity.Lot, error) { return uc.repo.Update(ctx, id, in) })
}

// Lock bloquea cantidad de un lote.
func (uc *LotUseCase) Lock(ctx context.Context, id int64, in entity.LotLockInput) (*dto.LotResponse, error) {
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return uc.write(ctx, func(ctx context.Context) (*entity.Lot, error) { return uc.repo.Lock(ctx, id, in) })
}

// Unlock libera cantidad bloqueada.
func (uc *LotUseCase) Unlock(ctx context.Context, id int64, in entity.LotLockInput) (*dto.LotResponse, error) {
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return uc.write(ctx, func(ctx context.Context) (*entity.Lot, error) { return uc.repo.Unlock(ctx, id, in) })
}

func (uc *LotUseCase) write(ctx context.Context, fn func(ctx context.Context) (*entity.Lot, error)) (*dto.LotResponse, error) {
	lot, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(cache.KeyLots)
	if lot == nil {
		return nil, fmt.Errorf("lots: respuesta vacía del backend")
	}
	resp := toLotResponse(*lot)
	return &resp, nil
}

func lotListKey(f entity.LotFilter) string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("product_id", f.ProductID)
	set("supplier_id", f.SupplierID)
	set("warehouse_id", f.WarehouseID)
	set("status", f.Status)
	if f.WithStock {
		q.Set("with_stock", "true")
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return cache.Key(cache.KeyLots, "list", q.Encode())
}

func toLotResponse(l entity.Lot) dto.LotResponse {
	return dto.LotResponse{Lot: l, AvailableQuantity: inventory.LotAvailable(l)}
}
