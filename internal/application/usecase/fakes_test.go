package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(level ports.Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, string(level)+":"+msg)
}

// ─── lotes ─────────────────────────────────────────────────────────────────

type fakeLotRepo struct {
	lots      []entity.Lot
	listCalls int
	updated   []entity.LotInput
	err       error
}

func (f *fakeLotRepo) List(context.Context, entity.LotFilter) ([]entity.Lot, error) {
	f.listCalls++
	return f.lots, f.err
}

func (f *fakeLotRepo) GetByID(_ context.Context, id int64) (*entity.Lot, error) {
	for i := range f.lots {
		if f.lots[i].ID == id {
			l := f.lots[i]
			return &l, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Message: "lot not found"}
}

func (f *fakeLotRepo) Create(_ context.Context, in entity.LotInput) (*entity.Lot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Lot{ID: 99, ProductID: in.ProductID, LotNumber: in.LotNumber, CurrentQuantity: in.CurrentQuantity}, nil
}

func (f *fakeLotRepo) Update(_ context.Context, id int64, in entity.LotInput) (*entity.Lot, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, in)
	return &entity.Lot{ID: id, ProductID: in.ProductID, LotNumber: in.LotNumber, CurrentQuantity: in.CurrentQuantity}, nil
}

func (f *fakeLotRepo) Lock(_ context.Context, id int64, in entity.LotLockInput) (*entity.Lot, error) {
	l := entity.Lot{ID: id}
	if in.Quantity != nil {
		l.LockedQuantity = *in.Quantity
	}
	return &l, f.err
}

func (f *fakeLotRepo) Unlock(_ context.Context, id int64, _ entity.LotLockInput) (*entity.Lot, error) {
	return &entity.Lot{ID: id}, f.err
}

// ─── pedidos ───────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders   map[int64]entity.Order
	getCalls int
}

func (f *fakeOrderRepo) List(context.Context, entity.OrderFilter) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	f.getCalls++
	o, ok := f.orders[id]
	if !ok {
		return nil, &domain.APIError{Status: 404, Message: "order not found"}
	}
	return &o, nil
}

type fakeSlip struct {
	order *entity.Order
}

func (f *fakeSlip) GenerateAllocationSlip(_ context.Context, o *entity.Order) ([]byte, error) {
	f.order = o
	return []byte("%PDF-1.3"), nil
}

// ─── maestros, planificación, SAP ──────────────────────────────────────────

type fakeMasterRepo struct {
	resource string
	items    []entity.BulkItem
	result   *entity.BulkResult
	err      error
}

func (f *fakeMasterRepo) BulkDelete(_ context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error) {
	f.resource, f.items = resource, items
	return f.result, f.err
}

func (f *fakeMasterRepo) BulkRestore(ctx context.Context, resource string, items []entity.BulkItem) (*entity.BulkResult, error) {
	return f.BulkDelete(ctx, resource, items)
}

type fakePlanningRepo struct {
	recCalls int
	runs     []entity.ReplenishmentRun
}

func (f *fakePlanningRepo) Recommendations(context.Context, string) ([]entity.ReplenishmentRecommendation, error) {
	f.recCalls++
	return []entity.ReplenishmentRecommendation{{ID: 1}}, nil
}

func (f *fakePlanningRepo) RunReplenishment(_ context.Context, in entity.ReplenishmentRun) ([]entity.ReplenishmentRecommendation, error) {
	f.runs = append(f.runs, in)
	return nil, nil
}

func (f *fakePlanningRepo) Forecast(context.Context, entity.ForecastFilter) ([]entity.DemandForecast, error) {
	return nil, nil
}

type fakeSAPRepo struct {
	err error
}

func (f *fakeSAPRepo) RegisterSalesOrders(_ context.Context, orders []entity.SAPSalesOrder) (*entity.SAPRegisterResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.SAPRegisterResult{Registered: len(orders)}, nil
}
