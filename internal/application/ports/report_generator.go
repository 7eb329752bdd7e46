package ports

import (
	"context"
	"time"

	docdomain "github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// DocumentacionReport datos del reporte imprimible de un período.
type DocumentacionReport struct {
	Title       string
	Query       entity.ManagementQuery
	GeneratedAt time.Time
	Records     []entity.ClassifiedRecord
	Summary     docdomain.Summary
}

// ReportGenerator define el puerto de salida para generar el reporte en PDF.
type ReportGenerator interface {
	GenerateDocumentacionPDF(ctx context.Context, report DocumentacionReport) ([]byte, error)
}
