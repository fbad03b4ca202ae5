package allocation

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DragAssigner asignación manual arrastrando un lote sobre una línea.
// No toca el State local: la vista se refresca por invalidación.
type DragAssigner struct {
	deps Deps
}

// NewDragAssigner construye el asignador.
func NewDragAssigner(deps Deps) *DragAssigner {
	return &DragAssigner{deps: deps.withDefaults()}
}

// DragAssign registra una sugerencia manual lote→línea.
func (d *DragAssigner) DragAssign(ctx context.Context, orderLineID, lotID int64, qty decimal.Decimal) (*entity.ManualSuggestionResult, error) {
	in := entity.ManualSuggestionInput{OrderLineID: orderLineID, LotID: lotID, AllocatedQuantity: qty}
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	keys := []string{cache.KeyOrders, cache.OrderLineKey(orderLineID), cache.KeyLots}
	return mutate(ctx, d.deps, OpManualSuggestion, orderLineID, keys, func(ctx context.Context) (*entity.ManualSuggestionResult, error) {
		return d.deps.Repo.CreateManualSuggestion(ctx, in)
	})
}
