// Package pdf genera el 引当票 (hoja de asignación) de un pedido con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° pedido + cliente      │  Fecha + QR del pedido   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Línea | Producto | Requerido | Lote | Almacén | Cant │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: requerido / asignado / pendiente                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ ports.AllocationSlipGenerator = (*SlipGenerator)(nil)

// SlipGenerator implementa ports.AllocationSlipGenerator.
type SlipGenerator struct {
	now func() time.Time
}

// NewSlipGenerator construye el generador.
func NewSlipGenerator() *SlipGenerator { return &SlipGenerator{now: time.Now} }

// GenerateAllocationSlip genera el PDF y devuelve sus bytes.
func (g *SlipGenerator) GenerateAllocationSlip(ctx context.Context, order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de asignacion "+order.OrderNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(lineRows(order.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order.Lines))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(order *entity.Order, printedAt time.Time) core.Row {
	customer := order.CustomerCode
	if order.CustomerName != "" {
		customer += " " + order.CustomerName
	}
	return row.New(28).Add(
		col.New(8).Add(
			text.New("HOJA DE ASIGNACION DE LOTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido: "+order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
			text.New("Cliente: "+customer, props.Text{Size: 9, Top: 15, Color: colorGray}),
			text.New(fmt.Sprintf("Entrega: %s   |   Fecha pedido: %s",
				nonEmpty(order.DeliveryPlaceCode, "-"), nonEmpty(order.OrderDate, "-"),
			), props.Text{Size: 8, Top: 20, Color: colorGray}),
		),
		col.New(2).Add(
			text.New("Impreso: "+printedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
		col.New(2).Add(code.NewQr("order:"+strconv.FormatInt(order.ID, 10), props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Linea", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Requerido", 2, align.Right),
		h("Lote", 2, align.Left),
		h("Almacen", 1, align.Center),
		h("Asignado", 2, align.Right),
	)
}

// lineRows: una fila por asignación; la línea sin asignaciones sale con "-".
func lineRows(lines []entity.OrderLine) []core.Row {
	cell := func(s string, size int, a align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c}))
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		product := l.ProductCode
		if l.ProductName != "" {
			product += " " + l.ProductName
		}
		if len(l.Allocations) == 0 {
			rows = append(rows, row.New(7).Add(
				cell(strconv.FormatInt(l.ID, 10), 1, align.Center, nil),
				cell(product, 4, align.Left, nil),
				cell(qty(l.RequiredQuantity, l.Unit), 2, align.Right, nil),
				cell("-", 2, align.Left, colorWarn),
				cell("-", 1, align.Center, nil),
				cell(qty(decimal.Zero, l.Unit), 2, align.Right, colorWarn),
			))
			continue
		}
		for i, a := range l.Allocations {
			lineID, prod, req := "", "", ""
			if i == 0 {
				lineID, prod, req = strconv.FormatInt(l.ID, 10), product, qty(l.RequiredQuantity, l.Unit)
			}
			warehouse := "-"
			if a.WarehouseID > 0 {
				warehouse = strconv.FormatInt(a.WarehouseID, 10)
			}
			rows = append(rows, row.New(7).Add(
				cell(lineID, 1, align.Center, nil),
				cell(prod, 4, align.Left, nil),
				cell(req, 2, align.Right, nil),
				cell(nonEmpty(a.LotNumber, strconv.FormatInt(a.LotID, 10)), 2, align.Left, nil),
				cell(warehouse, 1, align.Center, nil),
				cell(qty(a.Quantity, l.Unit), 2, align.Right, nil),
			))
		}
	}
	return rows
}

func totalsRow(lines []entity.OrderLine) core.Row {
	required, allocated := SlipTotals(lines)
	pending := required.Sub(allocated)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	var pendingColor *props.Color
	if pending.IsPositive() {
		pendingColor = colorWarn
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Requerido:"),
			label("Asignado:"),
			label("Pendiente:"),
		),
		col.New(3).Add(
			value(required.String(), nil),
			value(allocated.String(), nil),
			value(pending.String(), pendingColor),
		),
	)
}

// SlipTotals suma requerido y asignado de todas las líneas.
func SlipTotals(lines []entity.OrderLine) (required, allocated decimal.Decimal) {
	for _, l := range lines {
		required = required.Add(l.RequiredQuantity)
		if len(l.Allocations) == 0 {
			allocated = allocated.Add(l.AllocatedQuantity)
			continue
		}
		for _, a := range l.Allocations {
			allocated = allocated.Add(a.Quantity)
		}
	}
	return required, allocated
}

// ── helpers ───────────────────────────────────────────────────────────────────

func qty(d decimal.Decimal, unit string) string {
	if unit == "" {
		return d.String()
	}
	return d.String() + " " + unit
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
