package allocation

import (
	"context"
	"net/url"
	"sync"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// Operaciones de escritura; también son la etiqueta de métricas.
const (
	OpCreateAllocation = "create_allocation"
	OpCancelAllocation = "cancel_allocation"
	OpSaveWarehouse    = "save_warehouse_allocation"
	OpManualSuggestion = "manual_suggestion"
)

var failureMessages = map[string]string{
	OpCreateAllocation: "引当の登録に失敗しました",
	OpCancelAllocation: "引当の取消に失敗しました",
	OpSaveWarehouse:    "倉庫別引当の保存に失敗しました",
	OpManualSuggestion: "手動引当に失敗しました",
}

var successMessages = map[string]string{
	OpCreateAllocation: "引当を登録しました",
	OpCancelAllocation: "引当を取り消しました",
	OpSaveWarehouse:    "倉庫別引当を保存しました",
	OpManualSuggestion: "ロットを割り当てました",
}

// LineGuard permite una sola escritura en vuelo por línea.
type LineGuard struct {
	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewLineGuard construye un guard vacío.
func NewLineGuard() *LineGuard {
	return &LineGuard{inFlight: make(map[int64]struct{})}
}

// TryAcquire reserva la línea; false si ya hay una escritura en curso.
func (g *LineGuard) TryAcquire(lineID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[lineID]; busy {
		return false
	}
	g.inFlight[lineID] = struct{}{}
	return true
}

// Release libera la línea.
func (g *LineGuard) Release(lineID int64) {
	g.mu.Lock()
	delete(g.inFlight, lineID)
	g.mu.Unlock()
}

// Deps dependencias compartidas por Actions y DragAssigner.
type Deps struct {
	Repo     repository.AllocationRepository
	Cache    *cache.Cache
	Notifier ports.Notifier
	Guard    *LineGuard
	// ReadNotifier opcional, recibe los fallos de re-lectura de la caché (toast de la sesión).
	ReadNotifier ports.Notifier
	// OnMutation opcional, recibe cada resultado de escritura (métricas).
	OnMutation func(op string, err error)
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = cache.New()
	}
	if d.Notifier == nil {
		d.Notifier = ports.Discard
	}
	if d.Guard == nil {
		d.Guard = NewLineGuard()
	}
	return d
}

// Actions lecturas y escrituras de asignación para una línea y producto.
type Actions struct {
	lineID    int64
	productID int64
	deps      Deps
}

// NewActions construye las acciones de una línea. Con lineID<=0 quedan deshabilitadas.
func NewActions(lineID, productID int64, deps Deps) *Actions {
	return &Actions{lineID: lineID, productID: productID, deps: deps.withDefaults()}
}

// Enabled true cuando hay una línea seleccionada.
func (a *Actions) Enabled() bool { return a.lineID > 0 }

// LineID línea asociada.
func (a *Actions) LineID() int64 { return a.lineID }

// Candidates lista cacheada de lotes elegibles para la línea.
func (a *Actions) Candidates(ctx context.Context, q entity.CandidateQuery) ([]entity.AllocationCandidate, error) {
	if !a.Enabled() {
		return nil, domain.ErrNotReady
	}
	q.OrderLineID = a.lineID
	q.ProductID = a.productID
	if q.Strategy == "" {
		q.Strategy = entity.StrategyFEFO
	}
	key := cache.Key(cache.CandidatesKey(a.lineID, a.productID),
		url.PathEscape(q.CustomerCode), url.PathEscape(q.ProductCode), url.PathEscape(q.DeliveryPlaceCode),
		q.Strategy, q.Limit)
	if a.deps.ReadNotifier != nil {
		ctx = cache.NotifyTo(ctx, a.deps.ReadNotifier)
	}
	return cache.Fetch(ctx, a.deps.Cache, key, func(ctx context.Context) ([]entity.AllocationCandidate, error) {
		return a.deps.Repo.Candidates(ctx, q)
	})
}

// CreateAllocation confirma asignaciones lote→cantidad en la línea.
func (a *Actions) CreateAllocation(ctx context.Context, in entity.CreateAllocationInput) (*entity.AllocationResult, error) {
	if !a.Enabled() {
		return nil, domain.ErrNotReady
	}
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return mutate(ctx, a.deps, OpCreateAllocation, a.lineID, a.invalidations(), func(ctx context.Context) (*entity.AllocationResult, error) {
		return a.deps.Repo.CreateAllocations(ctx, a.lineID, in)
	})
}

// CancelAllocation cancela asignaciones de la línea (todas si no hay IDs).
func (a *Actions) CancelAllocation(ctx context.Context, in entity.CancelAllocationInput) (*entity.AllocationResult, error) {
	if !a.Enabled() {
		return nil, domain.ErrNotReady
	}
	return mutate(ctx, a.deps, OpCancelAllocation, a.lineID, a.invalidations(), func(ctx context.Context) (*entity.AllocationResult, error) {
		return a.deps.Repo.CancelAllocations(ctx, a.lineID, in)
	})
}

// SaveWarehouseAllocation guarda el reparto de la línea por almacén.
func (a *Actions) SaveWarehouseAllocation(ctx context.Context, in entity.WarehouseAllocationInput) (*entity.AllocationResult, error) {
	if !a.Enabled() {
		return nil, domain.ErrNotReady
	}
	if r := validation.Validate(in); !r.OK() {
		return nil, r.Err()
	}
	return mutate(ctx, a.deps, OpSaveWarehouse, a.lineID, a.invalidations(), func(ctx context.Context) (*entity.AllocationResult, error) {
		return a.deps.Repo.SaveWarehouseAllocations(ctx, a.lineID, in)
	})
}

// El detalle del pedido guarda las cantidades asignadas de sus líneas.
func (a *Actions) invalidations() []string {
	return []string{cache.KeyOrders, cache.OrderLineKey(a.lineID), cache.KeyLots}
}

// mutate ejecuta una escritura con guard por línea, notificación e invalidación.
// No reintenta: el usuario vuelve a enviar.
func mutate[T any](ctx context.Context, deps Deps, op string, lineID int64, keys []string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if !deps.Guard.TryAcquire(lineID) {
		return zero, domain.ErrInFlight
	}
	defer deps.Guard.Release(lineID)

	res, err := fn(ctx)
	if deps.OnMutation != nil {
		deps.OnMutation(op, err)
	}
	if err != nil {
		deps.Notifier.Notify(ports.LevelError, failureMessages[op]+": "+err.Error())
		return zero, err
	}
	for _, k := range keys {
		deps.Cache.Invalidate(k)
	}
	deps.Notifier.Notify(ports.LevelSuccess, successMessages[op])
	return res, nil
}
