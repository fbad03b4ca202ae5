package repository

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// OrderRepository puerto de lectura de pedidos.
type OrderRepository interface {
	List(ctx context.Context, f entity.OrderFilter) ([]entity.Order, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
}
