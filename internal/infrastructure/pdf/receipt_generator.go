// Package pdf implementa la generación del recibo imprimible de un pedido.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: nombre del café │ Pedido # + fecha   │
//	│  ───────────────────────────────────────────  │
//	│  Cliente + estado de pago                     │
//	│  TABLA: Ítem | Estado | Precio                │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 80, Green: 50, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ordering.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ordering.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	cafeName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(cafeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{cafeName: cafeName}
}

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, order *entity.Order, lines []ordering.ReceiptLine) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Recibo pedido %d", order.OrderID), true).
		WithAuthor(g.cafeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range lines {
		m.AddRows(detailRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del café (izq), número de pedido y fecha (der).
func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.cafeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Pedido #%d", order.OrderID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
			}),
			text.New(order.ReceivedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func customerRow(order *entity.Order) core.Row {
	paid := "PENDIENTE DE PAGO"
	if order.Paid {
		paid = "PAGADO"
	}
	return row.New(8).Add(
		col.New(7).Add(
			text.New("Cliente: "+order.Login, props.Text{Size: 9, Top: 2}),
		),
		col.New(5).Add(
			text.New(paid, props.Text{
				Size: 9, Top: 2, Align: align.Right, Style: fontstyle.Bold, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Ítem", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New("Estado", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New("Precio", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func detailRow(l ordering.ReceiptLine) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(l.Name, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(l.Status, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New("$"+l.Price.StringFixed(2), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right,
		})),
		col.New(3).Add(text.New("$"+order.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right, Color: colorPrimary,
		})),
	)
}
