package dto

import "github.com/jhoicas/lot-allocation-bff/internal/domain/entity"

// BulkRequest registros maestros a borrar o restaurar.
type BulkRequest struct {
	Items []entity.BulkItem `json:"items"`
}

// BulkResponse resultado por registro, resumen y subconjunto fallido.
type BulkResponse struct {
	Results   []entity.BulkItemResult `json:"results"`
	Summary   entity.BulkSummary      `json:"summary"`
	FailedIDs []int64                 `json:"failed_ids"`
}
