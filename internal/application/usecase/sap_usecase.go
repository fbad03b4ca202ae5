package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// SAPUseCase registro de pedidos de venta SAP.
type SAPUseCase struct {
	repo     repository.SAPRepository
	cache    *cache.Cache
	notifier ports.Notifier
}

// NewSAPUseCase construye el caso de uso.
func NewSAPUseCase(repo repository.SAPRepository, c *cache.Cache, n ports.Notifier) *SAPUseCase {
	if n == nil {
		n = ports.Discard
	}
	return &SAPUseCase{repo: repo, cache: c, notifier: n}
}

// Register valida y envía los pedidos; los pedidos nuevos invalidan la lista.
func (uc *SAPUseCase) Register(ctx context.Context, orders []entity.SAPSalesOrder) (*entity.SAPRegisterResult, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: sin pedidos", domain.ErrInvalidInput)
	}
	if r := validation.Slice(orders); !r.OK() {
		return nil, r.Err()
	}
	res, err := uc.repo.RegisterSalesOrders(ctx, orders)
	if err != nil {
		uc.notifier.Notify(ports.LevelError, "SAP受注の登録に失敗しました: "+err.Error())
		return nil, err
	}
	uc.cache.Invalidate(cache.KeyOrders)
	uc.notifier.Notify(ports.LevelSuccess, fmt.Sprintf("SAP受注を%d件登録しました", res.Registered))
	return res, nil
}
