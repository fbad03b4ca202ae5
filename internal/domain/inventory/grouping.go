package inventory

import (
	"sort"
	"strconv"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnknownSupplier se usa en la clave cuando el lote no tiene proveedor.
const UnknownSupplier = "unknown"

// ProductGroup agregado derivado de lotes con el mismo producto y proveedor.
// Nunca se modifica en sitio: se reconstruye con cada cambio de la lista de lotes.
type ProductGroup struct {
	Key           string          `json:"key"` // productId:supplierCode
	ProductID     int64           `json:"product_id"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	SupplierCode  string          `json:"supplier_code"`
	SupplierName  string          `json:"supplier_name"`
	Lots          []entity.Lot    `json:"lots"`
	LotCount      int             `json:"lot_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	MinExpiryDate *string         `json:"min_expiry_date"`
}

// LotGrouper agrupa lotes ordenando los códigos con las reglas de un idioma.
type LotGrouper struct {
	tag language.Tag
}

// NewLotGrouper construye el agrupador para el idioma dado.
func NewLotGrouper(tag language.Tag) *LotGrouper {
	return &LotGrouper{tag: tag}
}

// GroupLotsByProduct agrupa con collation japonesa.
func GroupLotsByProduct(lots []entity.Lot) []ProductGroup {
	return NewLotGrouper(language.Japanese).Group(lots)
}

// Group agrupa por producto+proveedor y ordena por código de producto y luego de proveedor.
// No modifica lots; los lotes de cada grupo conservan el orden de entrada.
func (g *LotGrouper) Group(lots []entity.Lot) []ProductGroup {
	groups := make([]*ProductGroup, 0)
	byKey := make(map[string]*ProductGroup)

	for _, lot := range lots {
		key := groupKey(lot)
		grp, ok := byKey[key]
		if !ok {
			grp = &ProductGroup{
				Key:           key,
				ProductID:     lot.ProductID,
				ProductCode:   lot.ProductCode,
				ProductName:   lot.ProductName,
				SupplierCode:  lot.SupplierCode,
				SupplierName:  lot.SupplierName,
				TotalQuantity: decimal.Zero,
			}
			byKey[key] = grp
			groups = append(groups, grp)
		}
		grp.Lots = append(grp.Lots, lot)
		grp.LotCount++
		grp.TotalQuantity = grp.TotalQuantity.Add(lot.CurrentQuantity)
		if lot.ExpiryDate != nil && *lot.ExpiryDate != "" {
			// Fechas ISO YYYY-MM-DD: el orden de strings es cronológico.
			if grp.MinExpiryDate == nil || *lot.ExpiryDate < *grp.MinExpiryDate {
				d := *lot.ExpiryDate
				grp.MinExpiryDate = &d
			}
		}
	}

	col := collate.New(g.tag)
	sort.SliceStable(groups, func(i, j int) bool {
		if c := col.CompareString(groups[i].ProductCode, groups[j].ProductCode); c != 0 {
			return c < 0
		}
		return col.CompareString(groups[i].SupplierCode, groups[j].SupplierCode) < 0
	})

	out := make([]ProductGroup, len(groups))
	for i, grp := range groups {
		out[i] = *grp
	}
	return out
}

func groupKey(l entity.Lot) string {
	supplier := l.SupplierCode
	if supplier == "" {
		supplier = UnknownSupplier
	}
	return strconv.FormatInt(l.ProductID, 10) + ":" + supplier
}
