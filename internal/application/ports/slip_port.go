package ports

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// AllocationSlipGenerator genera el documento de picking (引当票) de un pedido.
type AllocationSlipGenerator interface {
	GenerateAllocationSlip(ctx context.Context, order *entity.Order) ([]byte, error)
}
