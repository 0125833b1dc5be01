// Package pdf genera el comprobante de reserva en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: ServiHogar  │  ID reserva + Fecha   │
//	│  ────────────────────────────────────────── │
//	│  SERVICIO: nombre + rango de precio          │
//	│  CLIENTE / PROFESIONAL                       │
//	│  AGENDA: fecha, hora, dirección              │
//	│  ────────────────────────────────────────── │
//	│  QR con el ID de la reserva + estado         │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 93}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appbooking.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa booking.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateBookingReceipt genera el comprobante y devuelve sus bytes.
// category puede ser nil si la categoría fue retirada del catálogo: el
// comprobante usa entonces el snapshot guardado en la reserva.
func (g *MarotoReceiptGenerator) GenerateBookingReceipt(
	_ context.Context,
	booking *entity.Booking,
	category *entity.ServiceCategory,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprobante de Reserva", true).
		WithAuthor("ServiHogar", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(booking))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(serviceRow(booking, category))
	m.AddRows(partiesRow(booking))
	m.AddRows(scheduleRow(booking))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(booking))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca (izq), ID de reserva y fecha de emisión (der).
func headerRow(b *entity.Booking) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ServiHogar", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(b.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+b.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// serviceRow: nombre del servicio y rango de precio estimado.
func serviceRow(b *entity.Booking, category *entity.ServiceCategory) core.Row {
	price := "precio a convenir"
	if category != nil {
		price = fmt.Sprintf("USD %s - %s (%s)",
			category.PriceMin.StringFixed(2), category.PriceMax.StringFixed(2), category.EstimatedTime)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Servicio: "+b.ServiceName, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
			text.New(price, props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
	)
}

// partiesRow: cliente (izq) y profesional asignado (der).
func partiesRow(b *entity.Booking) core.Row {
	professional := "Sin asignar"
	if b.ProfessionalName != "" {
		professional = b.ProfessionalName
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1}),
			text.New(b.CustomerName, props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("Profesional", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1}),
			text.New(professional, props.Text{Size: 10, Top: 6}),
		),
	)
}

// scheduleRow: fecha, hora y dirección del servicio.
func scheduleRow(b *entity.Booking) core.Row {
	return row.New(14).Add(
		col.New(4).Add(
			text.New("Fecha", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1}),
			text.New(b.ScheduledDate, props.Text{Size: 10, Top: 6}),
		),
		col.New(2).Add(
			text.New("Hora", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1}),
			text.New(b.ScheduledTime, props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("Dirección", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1}),
			text.New(b.Address, props.Text{Size: 10, Top: 6}),
		),
	)
}

// qrRow: QR con el ID de reserva para verificación, más el estado actual.
func qrRow(b *entity.Booking) core.Row {
	return row.New(30).Add(
		col.New(3).Add(
			code.NewQr(b.ID, props.Rect{Center: true, Percent: 85}),
		),
		col.New(9).Add(
			text.New("Estado: "+b.Status, props.Text{Style: fontstyle.Bold, Size: 10, Top: 8}),
			text.New("Presente este comprobante al profesional al inicio del servicio.", props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
	)
}
