package repository

import (
	"context"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// AllocationRepository puerto hacia el servicio externo de asignación (引当).
// Toda la lógica de asignación vive detrás de este contrato.
type AllocationRepository interface {
	// Candidates lotes elegibles ya ordenados (FEFO/FIFO) para una línea y producto.
	Candidates(ctx context.Context, q entity.CandidateQuery) ([]entity.AllocationCandidate, error)
	CreateAllocations(ctx context.Context, lineID int64, in entity.CreateAllocationInput) (*entity.AllocationResult, error)
	CancelAllocations(ctx context.Context, lineID int64, in entity.CancelAllocationInput) (*entity.AllocationResult, error)
	SaveWarehouseAllocations(ctx context.Context, lineID int64, in entity.WarehouseAllocationInput) (*entity.AllocationResult, error)
	// CreateManualSuggestion registra una asignación provisional (drag & drop).
	CreateManualSuggestion(ctx context.Context, in entity.ManualSuggestionInput) (*entity.ManualSuggestionResult, error)
}
