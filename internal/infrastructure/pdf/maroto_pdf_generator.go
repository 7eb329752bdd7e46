// Package pdf genera el reporte imprimible de la documentación requerida de un período.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Entidad   │  Período + Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos por estado + próximo vencimiento           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Estado | Denominación | Patente | Documento | Serv.  │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	colorVencido   = &props.Color{Red: 230, Green: 126, Blue: 34}
	colorPendiente = &props.Color{Red: 204, Green: 153, Blue: 0}
	colorEsperando = &props.Color{Red: 41, Green: 128, Blue: 185}
	colorAprobado  = &props.Color{Red: 39, Green: 174, Blue: 96}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ ports.ReportGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDocumentacionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentacionPDF(_ context.Context, report ports.DocumentacionReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Records)...)
	if len(report.Records) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin documentación requerida para el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + entidad (izq) y período + fecha de emisión (der).
func headerRow(r ports.DocumentacionReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Entidad %d", r.Query.EntityID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Período %02d/%d", r.Query.Month, r.Query.Year), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: un bloque por estado con su conteo.
func summaryRow(r ports.DocumentacionReport) core.Row {
	s := r.Summary
	box := func(label string, n int, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	proximo := "—"
	if s.ProximoVencimiento != nil {
		proximo = fmt.Sprintf("%d días", *s.ProximoVencimiento)
	}
	return row.New(14).Add(
		box("Vencidos", s.Vencidos, colorVencido),
		box("Pendientes", s.Pendientes, colorPendiente),
		box("Esperando aprobación", s.EsperandoAprobacion, colorEsperando),
		box("Aprobados", s.Aprobados, colorAprobado),
		box("Total", s.Total, colorPrimary),
		col.New(2).Add(
			text.New("Próximo vencimiento", props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(proximo, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 5}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Estado", 2),
		h("Denominación", 2),
		h("Patente", 2),
		h("Documento", 3),
		h("Servicio", 3),
	)
}

// tableRows: una fila por registro, en el orden recibido.
func tableRows(records []entity.ClassifiedRecord) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		cell := func(s string, size int) core.Col {
			return col.New(size).Add(text.New(nonEmpty(s, "—"), props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(statusLabel(r), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: statusColor(r.Status),
			})),
			cell(r.Display.EntityName, 2),
			cell(r.Display.Plate, 2),
			cell(r.Display.Document, 3),
			cell(r.Display.Service, 3),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(r entity.ClassifiedRecord) string {
	if r.Status == entity.StatusUnknown {
		return "Desconocido"
	}
	return r.StatusText
}

func statusColor(s entity.StatusKind) *props.Color {
	switch s {
	case entity.StatusVencido:
		return colorVencido
	case entity.StatusPendiente:
		return colorPendiente
	case entity.StatusEsperandoAprobacion:
		return colorEsperando
	case entity.StatusAprobado:
		return colorAprobado
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
