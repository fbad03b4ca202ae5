package allocation

import (
	"sort"
	"sync"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineStatus estado local de una línea de pedido en la sesión.
type LineStatus string

const (
	StatusClean     LineStatus = "clean"     // sin ediciones pendientes
	StatusDraft     LineStatus = "draft"     // ediciones locales sin confirmar
	StatusCommitted LineStatus = "committed" // confirmado por el backend
)

// OverAllocatedMessage aviso cuando la suma asignada supera lo requerido.
const OverAllocatedMessage = "必要数量を超えて引当されています"

// State asignaciones lote→cantidad y estado por línea.
// clean → draft (Assign) → committed (MarkCommitted); Reset vuelve a clean.
// La sobreasignación es solo un aviso: quien acepta o rechaza es el backend.
type State struct {
	mu          sync.RWMutex
	assignments map[int64]map[int64]decimal.Decimal
	status      map[int64]LineStatus
	required    map[int64]decimal.Decimal
}

// NewState construye un estado vacío (todas las líneas en clean).
func NewState() *State {
	return &State{
		assignments: make(map[int64]map[int64]decimal.Decimal),
		status:      make(map[int64]LineStatus),
		required:    make(map[int64]decimal.Decimal),
	}
}

// Assign fija la cantidad de un lote en una línea y la pasa a draft.
// Cantidad cero quita el lote; negativa es ErrInvalidQuantity.
func (s *State) Assign(lineID, lotID int64, qty decimal.Decimal) error {
	if lineID <= 0 || lotID <= 0 {
		return domain.ErrInvalidInput
	}
	if qty.IsNegative() {
		return domain.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lots := s.assignments[lineID]
	if lots == nil {
		lots = make(map[int64]decimal.Decimal)
		s.assignments[lineID] = lots
	}
	if qty.IsZero() {
		delete(lots, lotID)
	} else {
		lots[lotID] = qty
	}
	s.status[lineID] = StatusDraft
	return nil
}

// SetRequired registra la cantidad requerida de la línea para el aviso de sobreasignación.
func (s *State) SetRequired(lineID int64, qty decimal.Decimal) {
	s.mu.Lock()
	s.required[lineID] = qty
	s.mu.Unlock()
}

// Status devuelve el estado de la línea (clean si nunca se tocó).
func (s *State) Status(lineID int64) LineStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked(lineID)
}

func (s *State) statusLocked(lineID int64) LineStatus {
	if st, ok := s.status[lineID]; ok {
		return st
	}
	return StatusClean
}

// Assignments copia de las asignaciones de la línea.
func (s *State) Assignments(lineID int64) map[int64]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]decimal.Decimal, len(s.assignments[lineID]))
	for k, v := range s.assignments[lineID] {
		out[k] = v
	}
	return out
}

// Total suma de cantidades asignadas a la línea.
func (s *State) Total(lineID int64) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalLocked(lineID)
}

func (s *State) totalLocked(lineID int64) decimal.Decimal {
	total := decimal.Zero
	for _, q := range s.assignments[lineID] {
		total = total.Add(q)
	}
	return total
}

// IsOverAllocated true si hay requerido conocido y la suma lo supera.
func (s *State) IsOverAllocated(lineID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overLocked(lineID)
}

func (s *State) overLocked(lineID int64) bool {
	req, ok := s.required[lineID]
	if !ok {
		return false
	}
	return s.totalLocked(lineID).GreaterThan(req)
}

// MarkCommitted pasa la línea de draft a committed. Desde otro estado es ErrInvalidTransition.
func (s *State) MarkCommitted(lineID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statusLocked(lineID) != StatusDraft {
		return domain.ErrInvalidTransition
	}
	s.status[lineID] = StatusCommitted
	return nil
}

// Reset descarta las asignaciones locales y vuelve la línea a clean.
func (s *State) Reset(lineID int64) {
	s.mu.Lock()
	delete(s.assignments, lineID)
	delete(s.status, lineID)
	s.mu.Unlock()
}

// ResetAll reinicia la sesión completa (nueva carga de página).
func (s *State) ResetAll() {
	s.mu.Lock()
	s.assignments = make(map[int64]map[int64]decimal.Decimal)
	s.status = make(map[int64]LineStatus)
	s.required = make(map[int64]decimal.Decimal)
	s.mu.Unlock()
}

// LineSnapshot vista inmutable de una línea.
type LineSnapshot struct {
	LineID        int64                `json:"line_id"`
	Status        LineStatus           `json:"status"`
	Assignments   []entity.LotQuantity `json:"assignments"`
	Total         decimal.Decimal      `json:"total"`
	Required      *decimal.Decimal     `json:"required,omitempty"`
	OverAllocated bool                 `json:"over_allocated"`
	Warning       string               `json:"warning,omitempty"`
}

// Snapshot devuelve la línea con asignaciones ordenadas por lote.
func (s *State) Snapshot(lineID int64) LineSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := LineSnapshot{
		LineID:      lineID,
		Status:      s.statusLocked(lineID),
		Assignments: make([]entity.LotQuantity, 0, len(s.assignments[lineID])),
		Total:       s.totalLocked(lineID),
	}
	for lotID, q := range s.assignments[lineID] {
		snap.Assignments = append(snap.Assignments, entity.LotQuantity{LotID: lotID, Quantity: q})
	}
	sort.Slice(snap.Assignments, func(i, j int) bool {
		return snap.Assignments[i].LotID < snap.Assignments[j].LotID
	})
	if req, ok := s.required[lineID]; ok {
		r := req
		snap.Required = &r
	}
	if s.overLocked(lineID) {
		snap.OverAllocated = true
		snap.Warning = OverAllocatedMessage
	}
	return snap
}

// AllocationInput cuerpo de creación a partir de las asignaciones locales.
func (s *State) AllocationInput(lineID int64) entity.CreateAllocationInput {
	snap := s.Snapshot(lineID)
	return entity.CreateAllocationInput{Allocations: snap.Assignments}
}
