package inventory

import (
	"fmt"
	"strings"
)

// FilterField campo de los selects encadenados producto/proveedor/almacén.
type FilterField string

const (
	FieldNone      FilterField = ""
	FieldProduct   FilterField = "product_id"
	FieldSupplier  FilterField = "supplier_id"
	FieldWarehouse FilterField = "warehouse_id"
)

var allFields = [...]FilterField{FieldProduct, FieldSupplier, FieldWarehouse}

// ParseFilterField acepta "product", "product_id", etc.; "", "none" y "null" equivalen a FieldNone.
func ParseFilterField(s string) (FilterField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null":
		return FieldNone, nil
	case "product", "product_id":
		return FieldProduct, nil
	case "supplier", "supplier_id":
		return FieldSupplier, nil
	case "warehouse", "warehouse_id":
		return FieldWarehouse, nil
	}
	return FieldNone, fmt.Errorf("campo de filtro desconocido %q", s)
}

// Option valor seleccionable de un select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterSelection selección actual; "" = sin seleccionar.
type FilterSelection struct {
	ProductID   string `json:"product_id"`
	SupplierID  string `json:"supplier_id"`
	WarehouseID string `json:"warehouse_id"`
}

// Get devuelve el valor seleccionado de un campo.
func (s FilterSelection) Get(f FilterField) string {
	switch f {
	case FieldProduct:
		return s.ProductID
	case FieldSupplier:
		return s.SupplierID
	case FieldWarehouse:
		return s.WarehouseID
	}
	return ""
}

// FilterOptions opciones válidas de cada campo dadas las otras dos selecciones.
// Las calcula el backend; el resolver no consulta datos.
type FilterOptions struct {
	Products   []Option `json:"products"`
	Suppliers  []Option `json:"suppliers"`
	Warehouses []Option `json:"warehouses"`
}

func (o FilterOptions) of(f FilterField) []Option {
	switch f {
	case FieldProduct:
		return o.Products
	case FieldSupplier:
		return o.Suppliers
	case FieldWarehouse:
		return o.Warehouses
	}
	return nil
}

// FilterPatch contiene solo los campos que deben cambiar.
// Una clave ausente significa "sin cambio", no "mantener el valor actual".
type FilterPatch map[FilterField]string

// Apply devuelve la selección resultante de aplicar el parche.
func (p FilterPatch) Apply(s FilterSelection) FilterSelection {
	for f, v := range p {
		switch f {
		case FieldProduct:
			s.ProductID = v
		case FieldSupplier:
			s.SupplierID = v
		case FieldWarehouse:
			s.WarehouseID = v
		}
	}
	return s
}

// GetDependentFilterUpdates determina qué selecciones dependientes quedan inválidas
// tras cambiar lastTouched y deben limpiarse. Propagación de un solo salto:
// el campo tocado nunca aparece en el parche y no hay cascada transitiva.
func GetDependentFilterUpdates(lastTouched FilterField, filters FilterSelection, options FilterOptions) FilterPatch {
	patch := FilterPatch{}
	if lastTouched == FieldNone {
		return patch
	}
	for _, f := range allFields {
		if f == lastTouched {
			continue
		}
		if !isValidSelection(filters.Get(f), options.of(f)) {
			patch[f] = ""
		}
	}
	return patch
}

func isValidSelection(value string, opts []Option) bool {
	if value == "" {
		return true
	}
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
