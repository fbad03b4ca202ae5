package usecase

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// PlanningUseCase recomendaciones de reposición y pronóstico de demanda.
type PlanningUseCase struct {
	repo  repository.PlanningRepository
	cache *cache.Cache
}

// NewPlanningUseCase construye el caso de uso.
func NewPlanningUseCase(repo repository.PlanningRepository, c *cache.Cache) *PlanningUseCase {
	return &PlanningUseCase{repo: repo, cache: c}
}

// Recommendations lista recomendaciones, opcionalmente por almacén.
func (uc *PlanningUseCase) Recommendations(ctx context.Context, warehouseID string) ([]entity.ReplenishmentRecommendation, error) {
	key := cache.Key(cache.KeyReplenishment, "warehouse", warehouseID)
	recs, err := cache.Fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.ReplenishmentRecommendation, error) {
		return uc.repo.Recommendations(ctx, warehouseID)
	})
	if recs == nil && err == nil {
		recs = []entity.ReplenishmentRecommendation{}
	}
	return recs, err
}

// Run recalcula recomendaciones.
func (uc *PlanningUseCase) Run(ctx context.Context, in entity.ReplenishmentRun) ([]entity.ReplenishmentRecommendation, error) {
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	recs, err := uc.repo.RunReplenishment(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(cache.KeyReplenishment)
	if recs == nil {
		recs = []entity.ReplenishmentRecommendation{}
	}
	return recs, nil
}

// Forecast pronóstico diario de demanda.
func (uc *PlanningUseCase) Forecast(ctx context.Context, f entity.ForecastFilter) ([]entity.DemandForecast, error) {
	key := cache.Key(cache.KeyForecast, f.ProductID, f.DateFrom, f.DateTo)
	out, err := cache.Fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.DemandForecast, error) {
		return uc.repo.Forecast(ctx, f)
	})
	if out == nil && err == nil {
		out = []entity.DemandForecast{}
	}
	return out, err
}
