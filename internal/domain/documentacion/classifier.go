package documentacion

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Etiquetas de estado tal como las envía el servicio remoto.
const (
	LabelVencido   = "Vencido"
	LabelPendiente = "Pendiente"
	LabelAprobado  = "Aprobado"

	// DefaultPendingApprovalLabel etiqueta canónica del tercer estado. La variante
	// "Pendiente aprobación" también aparece en el servicio; se configura por despliegue.
	DefaultPendingApprovalLabel = "Esperando aprobación"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05Z07:00"
)

// vehicleEntities denominaciones de ente que llevan patente.
var vehicleEntities = map[string]bool{
	"AUTOMOVIL": true,
	"CHASIS":    true,
	"ACOPLADO":  true,
}

// Classifier deriva estado, días restantes y campos de presentación de cada registro.
type Classifier struct {
	pendingApprovalLabel string
}

// NewClassifier construye el clasificador. label vacío usa DefaultPendingApprovalLabel.
func NewClassifier(pendingApprovalLabel string) *Classifier {
	if pendingApprovalLabel == "" {
		pendingApprovalLabel = DefaultPendingApprovalLabel
	}
	return &Classifier{pendingApprovalLabel: norm.NFC.String(pendingApprovalLabel)}
}

// Classify clasifica un registro respecto de la fecha today. Nunca falla: los datos
// faltantes o inválidos degradan a valores por defecto y quedan en Warnings.
func (c *Classifier) Classify(doc entity.Documentacion, today time.Time) entity.ClassifiedRecord {
	rec := entity.ClassifiedRecord{
		Display: entity.DisplayFields{
			Document:   doc.DocumentacionDenominacion.String(),
			Service:    doc.ServicioDenominacion.String(),
			EntityName: doc.DenominacionEnte.String(),
			Plate:      plateFor(doc),
		},
		DaysLeft: entity.Days(0),
	}

	var archivo entity.Archivo
	if doc.Archivo != nil {
		archivo = *doc.Archivo
	} else {
		rec.Warnings = append(rec.Warnings, domain.ClassificationWarning{
			Field: "Archivo", Reason: "registro sin archivo",
		})
	}

	label := norm.NFC.String(archivo.EstadoDenominacion.String())
	rec.Status = c.statusFor(label)

	switch rec.Status {
	case entity.StatusAprobado:
		days, warn := daysUntil(archivo.FechaVencimiento.String(), today)
		rec.DaysLeft = days
		if days.IsInfinite() {
			rec.StatusText = "N/A"
			rec.Warnings = append(rec.Warnings, warn)
		} else {
			rec.StatusText = fmt.Sprintf("%d días", days.Value())
		}
	case entity.StatusUnknown:
		if label != "" {
			rec.Warnings = append(rec.Warnings, domain.ClassificationWarning{
				Field: "Archivo.EstadoDenominacion", Value: label, Reason: "estado desconocido",
			})
		}
	default:
		rec.StatusText = label
	}
	return rec
}

// ClassifyAll clasifica todos los registros conservando el orden de entrada.
func (c *Classifier) ClassifyAll(docs []entity.Documentacion, today time.Time) []entity.ClassifiedRecord {
	out := make([]entity.ClassifiedRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, c.Classify(d, today))
	}
	return out
}

func (c *Classifier) statusFor(label string) entity.StatusKind {
	switch label {
	case LabelVencido:
		return entity.StatusVencido
	case LabelPendiente:
		return entity.StatusPendiente
	case c.pendingApprovalLabel:
		return entity.StatusEsperandoAprobacion
	case LabelAprobado:
		return entity.StatusAprobado
	default:
		return entity.StatusUnknown
	}
}

func plateFor(doc entity.Documentacion) string {
	if vehicleEntities[strings.ToUpper(doc.DenominacionEnte.String())] {
		return doc.VehiculoPatente.String()
	}
	return ""
}

// daysUntil días de calendario entre today y la fecha de vencimiento. La fecha con
// hora se toma en su propio offset; today en su zona.
func daysUntil(raw string, today time.Time) (entity.DaysLeft, domain.ClassificationWarning) {
	s := strings.TrimSpace(raw)
	warn := domain.ClassificationWarning{Field: "Archivo.FechaVencimiento", Value: raw}
	if s == "" {
		warn.Reason = "sin fecha de vencimiento"
		return entity.InfiniteDays(), warn
	}

	layout := layoutDate
	if strings.Contains(s, "T") {
		layout = layoutDateTime
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		warn.Reason = "fecha de vencimiento ilegible"
		return entity.InfiniteDays(), warn
	}

	// Con Unix y no con Sub: time.Duration se satura a los ~292 años y fechas como
	// 9999-12-31 se usan como "no vence".
	due := calendarDay(t).Unix()
	now := calendarDay(today).Unix()
	return entity.Days(int((due - now) / secondsPerDay)), warn
}

const secondsPerDay = 24 * 60 * 60

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
