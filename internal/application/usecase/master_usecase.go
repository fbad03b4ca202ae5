package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

var resourcePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,62}$`)

// MasterUseCase borrado y restauración masivos de maestros.
type MasterUseCase struct {
	repo  repository.MasterRepository
	cache *cache.Cache
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(repo repository.MasterRepository, c *cache.Cache) *MasterUseCase {
	return &MasterUseCase{repo: repo, cache: c}
}

// BulkDelete borra (lógicamente) los registros indicados.
func (uc *MasterUseCase) BulkDelete(ctx context.Context, resource string, items []entity.BulkItem) (*dto.BulkResponse, error) {
	return uc.run(ctx, resource, items, uc.repo.BulkDelete, func(s *entity.BulkSummary) { s.Deleted++ })
}

// BulkRestore restaura registros borrados.
func (uc *MasterUseCase) BulkRestore(ctx context.Context, resource string, items []entity.BulkItem) (*dto.BulkResponse, error) {
	return uc.run(ctx, resource, items, uc.repo.BulkRestore, func(s *entity.BulkSummary) { s.Updated++ })
}

func (uc *MasterUseCase) run(
	ctx context.Context,
	resource string,
	items []entity.BulkItem,
	fn func(context.Context, string, []entity.BulkItem) (*entity.BulkResult, error),
	succeeded func(*entity.BulkSummary),
) (*dto.BulkResponse, error) {
	if !resourcePattern.MatchString(resource) {
		return nil, fmt.Errorf("%w: recurso %q", domain.ErrInvalidInput, resource)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items vacío", domain.ErrInvalidInput)
	}
	if r := validation.Slice(items); !r.OK() {
		return nil, r.Err()
	}
	res, err := fn(ctx, resource, items)
	if err != nil {
		return nil, err
	}
	summary := res.Summary
	if summary.Total == 0 && len(res.Results) > 0 {
		summary = summarize(res.Results, succeeded)
	}
	if summary.Failed < summary.Total {
		// Los lotes muestran nombres de maestros.
		uc.cache.Invalidate(cache.KeyLots)
	}
	failed := res.FailedIDs()
	if failed == nil {
		failed = []int64{}
	}
	return &dto.BulkResponse{Results: res.Results, Summary: summary, FailedIDs: failed}, nil
}

// summarize agrega los resultados cuando el backend no envía resumen.
// Un borrado exitoso cuenta en Deleted y una restauración en Updated.
func summarize(results []entity.BulkItemResult, succeeded func(*entity.BulkSummary)) entity.BulkSummary {
	s := entity.BulkSummary{Total: len(results)}
	for _, r := range results {
		if !r.Success {
			s.Failed++
			continue
		}
		succeeded(&s)
	}
	return s
}
