package entity

// BulkItem referencia a un registro maestro con su versión (control optimista).
type BulkItem struct {
	ID      int64 `json:"id" validate:"required,gt=0"`
	Version int   `json:"version" validate:"gte=0"`
}

// BulkItemResult resultado por registro de una acción masiva.
type BulkItemResult struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkSummary resumen agregado de una acción masiva.
type BulkSummary struct {
	Total   int `json:"total"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

// BulkResult resultado mixto éxito/fallo de una acción masiva.
type BulkResult struct {
	Results []BulkItemResult `json:"results"`
	Summary BulkSummary      `json:"summary"`
}

// FailedIDs devuelve los IDs que fallaron, en el orden recibido.
func (r BulkResult) FailedIDs() []int64 {
	var ids []int64
	for _, it := range r.Results {
		if !it.Success {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
