package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// fakeBackend implementa los puertos del backend REST en memoria.
type fakeBackend struct {
	mu sync.Mutex

	lots   []entity.Lot
	orders map[int64]entity.Order

	allocErr    error
	created     []entity.CreateAllocationInput
	cancelled   []entity.CancelAllocationInput
	warehouses  []entity.WarehouseAllocationInput
	suggestions []entity.ManualSuggestionInput
	candidates  []entity.CandidateQuery

	bulk *entity.BulkResult
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{orders: make(map[int64]entity.Order)}
}

// ─── lotes ─────────────────────────────────────────────────────────────────

func (f *fakeBackend) List(context.Context, entity.LotFilter) ([]entity.Lot, error) {
	return f.lots, nil
}

func (f *fakeBackend) GetByID(_ context.Context, id int64) (*entity.Lot, error) {
	for i := range f.lots {
		if f.lots[i].ID == id {
			l := f.lots[i]
			return &l, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Message: "lot not found"}
}

func (f *fakeBackend) Create(_ context.Context, in entity.LotInput) (*entity.Lot, error) {
	return &entity.Lot{ID: 99, ProductID: in.ProductID, LotNumber: in.LotNumber, CurrentQuantity: in.CurrentQuantity}, nil
}

func (f *fakeBackend) Update(_ context.Context, id int64, in entity.LotInput) (*entity.Lot, error) {
	if in.Version != nil && *in.Version < 3 {
		return nil, &domain.APIError{Status: 409, Code: "VERSION_CONFLICT", Message: "lot was modified"}
	}
	return &entity.Lot{ID: id, ProductID: in.ProductID, LotNumber: in.LotNumber}, nil
}

func (f *fakeBackend) Lock(_ context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error) {
	l := entity.Lot{ID: id}
	if in.Quantity != nil {
		l.LockedQuantity = *in.Quantity
	}
	return &l, nil
}

func (f *fakeBackend) Unlock(_ context.Context, id int64, _ entity.LotLockInput) (*entity.Lot, error) {
	return &entity.Lot{ID: id}, nil
}

// ─── pedidos ───────────────────────────────────────────────────────────────

type fakeOrders struct{ b *fakeBackend }

func (o fakeOrders) List(context.Context, entity.OrderFilter) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(o.b.orders))
	for _, ord := range o.b.orders {
		out = append(out, ord)
	}
	return out, nil
}

func (o fakeOrders) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	ord, ok := o.b.orders[id]
	if !ok {
		return nil, &domain.APIError{Status: 404, Message: "order not found"}
	}
	return &ord, nil
}

type fakeSlip struct{}

func (fakeSlip) GenerateAllocationSlip(context.Context, *entity.Order) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

// ─── asignación ────────────────────────────────────────────────────────────

func (f *fakeBackend) Candidates(_ context.Context, q entity.CandidateQuery) ([]entity.AllocationCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.candidates = append(f.candidates, q)
	return []entity.AllocationCandidate{{LotID: 1, ProductID: q.ProductID, Rank: 1}}, nil
}

func (f *fakeBackend) CreateAllocations(_ context.Context, lineID int64, in entity.CreateAllocationInput) (*entity.AllocationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.allocErr != nil {
		return nil, f.allocErr
	}
	f.created = append(f.created, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeBackend) CancelAllocations(_ context.Context, lineID int64, in entity.CancelAllocationInput) (*entity.AllocationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeBackend) SaveWarehouseAllocations(_ context.Context, lineID int64, in entity.WarehouseAllocationInput) (*entity.AllocationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warehouses = append(f.warehouses, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeBackend) CreateManualSuggestion(_ context.Context, in entity.ManualSuggestionInput) (*entity.ManualSuggestionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suggestions = append(f.suggestions, in)
	return &entity.ManualSuggestionResult{ID: 1, OrderLineID: in.OrderLineID, LotID: in.LotID, AllocatedQuantity: in.AllocatedQuantity}, nil
}

// ─── planificación, SAP, maestros ──────────────────────────────────────────

func (f *fakeBackend) Recommendations(context.Context, string) ([]entity.ReplenishmentRecommendation, error) {
	return nil, nil
}

func (f *fakeBackend) RunReplenishment(context.Context, entity.ReplenishmentRun) ([]entity.ReplenishmentRecommendation, error) {
	return []entity.ReplenishmentRecommendation{{ID: 7}}, nil
}

func (f *fakeBackend) Forecast(context.Context, entity.ForecastFilter) ([]entity.DemandForecast, error) {
	return nil, nil
}

func (f *fakeBackend) RegisterSalesOrders(_ context.Context, orders []entity.SAPSalesOrder) (*entity.SAPRegisterResult, error) {
	return &entity.SAPRegisterResult{Registered: len(orders)}, nil
}

func (f *fakeBackend) BulkDelete(context.Context, string, []entity.BulkItem) (*entity.BulkResult, error) {
	return f.bulk, nil
}

func (f *fakeBackend) BulkRestore(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error) {
	return f.BulkDelete(ctx, resource, items)
}
