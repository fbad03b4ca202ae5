package inventory

import (
	"sort"
	"strconv"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// OptionsFromLots deriva las opciones de cada select a partir de los lotes.
// Las opciones de un campo respetan las selecciones de los otros dos, nunca la propia.
func OptionsFromLots(lots []entity.Lot, sel FilterSelection) FilterOptions {
	return FilterOptions{
		Products:   collect(lots, sel, FieldProduct),
		Suppliers:  collect(lots, sel, FieldSupplier),
		Warehouses: collect(lots, sel, FieldWarehouse),
	}
}

func collect(lots []entity.Lot, sel FilterSelection, field FilterField) []Option {
	seen := make(map[string]bool)
	opts := make([]Option, 0)
	for _, lot := range lots {
		if !matchesOthers(lot, sel, field) {
			continue
		}
		opt, ok := optionOf(lot, field)
		if !ok || seen[opt.Value] {
			continue
		}
		seen[opt.Value] = true
		opts = append(opts, opt)
	}
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
	return opts
}

func matchesOthers(lot entity.Lot, sel FilterSelection, skip FilterField) bool {
	for _, f := range allFields {
		if f == skip {
			continue
		}
		want := sel.Get(f)
		if want == "" {
			continue
		}
		got, ok := optionOf(lot, f)
		if !ok || got.Value != want {
			return false
		}
	}
	return true
}

func optionOf(lot entity.Lot, f FilterField) (Option, bool) {
	switch f {
	case FieldProduct:
		return Option{Value: strconv.FormatInt(lot.ProductID, 10), Label: label(lot.ProductCode, lot.ProductName)}, lot.ProductID > 0
	case FieldSupplier:
		if lot.SupplierID == nil {
			return Option{}, false
		}
		return Option{Value: strconv.FormatInt(*lot.SupplierID, 10), Label: label(lot.SupplierCode, lot.SupplierName)}, true
	case FieldWarehouse:
		return Option{Value: strconv.FormatInt(lot.WarehouseID, 10), Label: label(lot.WarehouseCode, lot.WarehouseName)}, lot.WarehouseID > 0
	}
	return Option{}, false
}

func label(code, name string) string {
	switch {
	case code == "":
		return name
	case name == "":
		return code
	}
	return code + " " + name
}
