package dto

import "github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"

// FilterStateResponse selección vigente y opciones válidas de cada select.
type FilterStateResponse struct {
	Selection inventory.FilterSelection `json:"selection"`
	Options   inventory.FilterOptions   `json:"options"`
}

// ResolveFilterRequest cambio de un select.
type ResolveFilterRequest struct {
	LastTouched string                    `json:"last_touched"`
	Filters     inventory.FilterSelection `json:"filters"`
}

// ResolveFilterResponse parche aplicado más el estado resultante.
type ResolveFilterResponse struct {
	Patch inventory.FilterPatch `json:"patch"`
	FilterStateResponse
}
