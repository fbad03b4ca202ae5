package repository

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// LotRepository puerto hacia el backend para lotes (GET/POST/PUT /lots, lock/unlock).
type LotRepository interface {
	List(ctx context.Context, f entity.LotFilter) ([]entity.Lot, error)
	GetByID(ctx context.Context, id int64) (*entity.Lot, error)
	Create(ctx context.Context, in entity.LotInput) (*entity.Lot, error)
	Update(ctx context.Context, id int64, in entity.LotInput) (*entity.Lot, error)
	Lock(ctx context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error)
	Unlock(ctx context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error)
}
