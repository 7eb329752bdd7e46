package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	docdomain "github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Colores de estado (mismos tonos que el reporte PDF).
var (
	white = lipgloss.Color("#FFFFFF")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#212121")).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))

	statusStyles = map[entity.StatusKind]lipgloss.Style{
		entity.StatusVencido:             lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#E65100")).Padding(0, 1),
		entity.StatusPendiente:           lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#FFA000")).Padding(0, 1),
		entity.StatusEsperandoAprobacion: lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#1565C0")).Padding(0, 1),
		entity.StatusAprobado:            lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#2E7D32")).Padding(0, 1),
	}
)

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	tableHeaders = []string{"Estado", "Denominación", "Patente", "Documento", "Servicio"}
)

// RenderTable escribe los registros en columnas, en el orden recibido, seguidos del resumen.
// Los registros de estado desconocido muestran la celda de estado vacía.
func RenderTable(w io.Writer, records []entity.ClassifiedRecord, summary docdomain.Summary) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			statusCell(r),
			r.Display.EntityName,
			r.Display.Plate,
			r.Display.Document,
			r.Display.Service,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(records) {
				if st, ok := statusStyles[records[row].Status]; ok {
					return st
				}
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteByte('\n')
	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("Sin documentación requerida para el período."))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(summaryLine(summary))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func statusCell(r entity.ClassifiedRecord) string {
	if r.Status == entity.StatusUnknown {
		return ""
	}
	return r.StatusText
}

func summaryLine(s docdomain.Summary) string {
	line := fmt.Sprintf("Total %d · Vencidos %d · Pendientes %d · Esperando aprobación %d · Aprobados %d",
		s.Total, s.Vencidos, s.Pendientes, s.EsperandoAprobacion, s.Aprobados)
	if s.Desconocidos > 0 {
		line += fmt.Sprintf(" · Desconocidos %d", s.Desconocidos)
	}
	if s.ProximoVencimiento != nil {
		line += fmt.Sprintf(" · Próximo vencimiento en %d días", *s.ProximoVencimiento)
	}
	return mutedStyle.Render(line)
}
