// Package pdf implementa la generación del reporte imprimible de cierre de
// día usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  "CIERRE DE DÍA" + fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Valor                                    │
//	│    Ingresos del día / Unidades vendidas /                   │
//	│    Pedidos del día / Stock restante                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDayCloseGenerator implementa report.DayClosePDFGenerator usando Maroto v2.
type MarotoDayCloseGenerator struct{}

// NewMarotoDayCloseGenerator construye el generador.
func NewMarotoDayCloseGenerator() *MarotoDayCloseGenerator { return &MarotoDayCloseGenerator{} }

// GenerateDayClosePDF genera el PDF del cierre y devuelve sus bytes.
func (g *MarotoDayCloseGenerator) GenerateDayClosePDF(
	_ context.Context,
	summary entity.DaySummary,
	shopName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cierre de día "+summary.Date, true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary, shopName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(
		metricRow("Ingresos del día", "$"+summary.Income.StringFixed(2)),
		metricRow("Unidades vendidas", strconv.Itoa(summary.Sold)),
		metricRow("Pedidos creados en el día", strconv.Itoa(summary.OrdersCount)),
		metricRow("Stock restante al cierre", strconv.Itoa(summary.ItemsLeft)),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y título + fecha del cierre (der).
func headerRow(summary entity.DaySummary, shopName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE DÍA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(summary.Date, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
		),
	)
}

// metricRow: una fila Concepto | Valor del resumen.
func metricRow(label, value string) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New(label, props.Text{
			Size: 10, Align: align.Left, Top: 2, Color: colorGray,
		})),
		col.New(4).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
