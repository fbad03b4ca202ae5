package allocation_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// ─── reloj falso ───────────────────────────────────────────────────────────

type fakeTimer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) allocation.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance mueve el reloj y dispara los temporizadores vencidos no detenidos.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

// fireAll dispara incluso temporizadores detenidos (carrera con Stop).
func (c *fakeClock) fireAll() {
	c.mu.Lock()
	all := append([]*fakeTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range all {
		t.fn()
	}
}

// ─── notificador ───────────────────────────────────────────────────────────

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(level ports.Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, string(level)+":"+msg)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

// ─── repositorio falso ─────────────────────────────────────────────────────

type fakeRepo struct {
	mu sync.Mutex

	candidates []entity.AllocationCandidate
	byPlace    map[string][]entity.AllocationCandidate
	err        error
	block      chan struct{}
	entered    chan struct{}

	candidateCalls int
	created        []entity.CreateAllocationInput
	cancelled      []entity.CancelAllocationInput
	warehouse      []entity.WarehouseAllocationInput
	manual         []entity.ManualSuggestionInput
}

func (f *fakeRepo) wait(ctx context.Context) error {
	if f.block == nil {
		return nil
	}
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeRepo) Candidates(ctx context.Context, q entity.CandidateQuery) ([]entity.AllocationCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.candidateCalls++
	if f.err != nil {
		return nil, f.err
	}
	if list, ok := f.byPlace[q.DeliveryPlaceCode]; ok {
		return list, nil
	}
	return f.candidates, nil
}

func (f *fakeRepo) CreateAllocations(ctx context.Context, lineID int64, in entity.CreateAllocationInput) (*entity.AllocationResult, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeRepo) CancelAllocations(ctx context.Context, lineID int64, in entity.CancelAllocationInput) (*entity.AllocationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.cancelled = append(f.cancelled, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeRepo) SaveWarehouseAllocations(ctx context.Context, lineID int64, in entity.WarehouseAllocationInput) (*entity.AllocationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.warehouse = append(f.warehouse, in)
	return &entity.AllocationResult{OrderLineID: lineID}, nil
}

func (f *fakeRepo) CreateManualSuggestion(ctx context.Context, in entity.ManualSuggestionInput) (*entity.ManualSuggestionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.manual = append(f.manual, in)
	return &entity.ManualSuggestionResult{ID: 1, OrderLineID: in.OrderLineID, LotID: in.LotID, AllocatedQuantity: in.AllocatedQuantity}, nil
}
