package documentacion_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var hoy = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local)

func registro(estado, vencimiento string) entity.Documentacion {
	return entity.Documentacion{
		DocumentacionDenominacion: "VTV",
		ServicioDenominacion:      "Transporte de cargas",
		DenominacionEnte:          "AUTOMOVIL",
		VehiculoPatente:           "ABC123",
		Archivo: &entity.Archivo{
			EstadoDenominacion: entity.Text(estado),
			FechaVencimiento:   entity.Text(vencimiento),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_MapeoDeEstados(t *testing.T) {
	c := documentacion.NewClassifier("")
	casos := map[string]entity.StatusKind{
		"Vencido":              entity.StatusVencido,
		"Pendiente":            entity.StatusPendiente,
		"Esperando aprobación": entity.StatusEsperandoAprobacion,
		"Aprobado":             entity.StatusAprobado,
		"Pendiente aprobación": entity.StatusUnknown,
		"aprobado":             entity.StatusUnknown,
		"":                     entity.StatusUnknown,
	}
	for label, want := range casos {
		got := c.Classify(registro(label, "2025-03-20"), hoy)
		assert.Equal(t, want, got.Status, "etiqueta %q", label)
	}
}

func TestClassify_EtiquetaAlternativaConfigurada(t *testing.T) {
	c := documentacion.NewClassifier("Pendiente aprobación")

	assert.Equal(t, entity.StatusEsperandoAprobacion, c.Classify(registro("Pendiente aprobación", ""), hoy).Status)
	assert.Equal(t, entity.StatusUnknown, c.Classify(registro("Esperando aprobación", ""), hoy).Status)
}

func TestClassify_EtiquetaDescompuestaUnicode(t *testing.T) {
	c := documentacion.NewClassifier("")
	// "ó" como "o" + acento combinante (NFD)
	rec := c.Classify(registro("Esperando aprobacio\u0301n", ""), hoy)
	assert.Equal(t, entity.StatusEsperandoAprobacion, rec.Status)
}

func TestClassify_NoAprobadoTieneCeroDias(t *testing.T) {
	c := documentacion.NewClassifier("")
	rec := c.Classify(registro("Vencido", "2020-01-01"), hoy)

	assert.Equal(t, entity.Days(0), rec.DaysLeft)
	assert.Equal(t, "Vencido", rec.StatusText)
	assert.Empty(t, rec.Warnings)
}

func TestClassify_EstadoDesconocidoGeneraAdvertencia(t *testing.T) {
	c := documentacion.NewClassifier("")
	rec := c.Classify(registro("Rechazado", ""), hoy)

	assert.Equal(t, entity.StatusUnknown, rec.Status)
	assert.Equal(t, "", rec.StatusText)
	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, "Archivo.EstadoDenominacion", rec.Warnings[0].Field)
}

func TestClassify_SinArchivo(t *testing.T) {
	c := documentacion.NewClassifier("")
	rec := c.Classify(entity.Documentacion{DocumentacionDenominacion: "Seguro"}, hoy)

	assert.Equal(t, entity.StatusUnknown, rec.Status)
	assert.Equal(t, "Seguro", rec.Display.Document)
	assert.NotEmpty(t, rec.Warnings)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_AprobadoFechaLejana(t *testing.T) {
	c := documentacion.NewClassifier("")
	pasado := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.Local)

	rec := c.Classify(registro("Aprobado", "2099-01-01"), pasado)

	assert.Equal(t, entity.StatusAprobado, rec.Status)
	assert.False(t, rec.DaysLeft.IsInfinite())
	assert.Greater(t, rec.DaysLeft.Value(), 30000)
}

func TestClassify_AprobadoFechaCentinelaSinSaturar(t *testing.T) {
	c := documentacion.NewClassifier("")
	casos := []struct {
		nombre string
		fecha  string
		hoy    time.Time
		dias   int
	}{
		{"9999-12-31 como no vence", "9999-12-31", time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local), 2912151},
		{"hoy en 1700", "2099-12-31", time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC), 146096},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			rec := c.Classify(registro("Aprobado", tc.fecha), tc.hoy)
			assert.Equal(t, tc.dias, rec.DaysLeft.Value())
			assert.Equal(t, fmt.Sprintf("%d días", tc.dias), rec.StatusText)
		})
	}

	// dos fechas lejanas distintas no empatan
	a := c.Classify(registro("Aprobado", "9999-12-30"), hoy)
	b := c.Classify(registro("Aprobado", "9999-12-31"), hoy)
	assert.Equal(t, -1, a.DaysLeft.Compare(b.DaysLeft))
	assert.Equal(t, 1, b.DaysLeft.Value()-a.DaysLeft.Value())
}

func TestClassify_AprobadoFechaSimple(t *testing.T) {
	c := documentacion.NewClassifier("")
	rec := c.Classify(registro("Aprobado", "  2025-03-20 "), hoy)

	assert.Equal(t, entity.Days(10), rec.DaysLeft)
	assert.Equal(t, "10 días", rec.StatusText)
}

func TestClassify_AprobadoFechaConOffset(t *testing.T) {
	c := documentacion.NewClassifier("")
	// la fecha se toma en su propio offset: 2025-03-12 aunque en UTC ya sea 13
	rec := c.Classify(registro("Aprobado", "2025-03-12T23:00:00-03:00"), hoy)

	assert.Equal(t, entity.Days(2), rec.DaysLeft)
}

func TestClassify_AprobadoVencidoDiasNegativos(t *testing.T) {
	c := documentacion.NewClassifier("")
	rec := c.Classify(registro("Aprobado", "2025-03-05"), hoy)

	assert.Equal(t, entity.Days(-5), rec.DaysLeft)
	assert.Equal(t, "-5 días", rec.StatusText)
}

func TestClassify_AprobadoFechaIlegible(t *testing.T) {
	c := documentacion.NewClassifier("")
	for _, fecha := range []string{"", "   ", "10/03/2025", "2025-03-20T10:00:00", "no-es-fecha"} {
		rec := c.Classify(registro("Aprobado", fecha), hoy)

		assert.True(t, rec.DaysLeft.IsInfinite(), "fecha %q", fecha)
		assert.Equal(t, "N/A", rec.StatusText)
		require.Len(t, rec.Warnings, 1)
		assert.Equal(t, "Archivo.FechaVencimiento", rec.Warnings[0].Field)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Patente y campos
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Patente(t *testing.T) {
	c := documentacion.NewClassifier("")

	auto := registro("Pendiente", "")
	assert.Equal(t, "ABC123", c.Classify(auto, hoy).Display.Plate)

	acoplado := registro("Pendiente", "")
	acoplado.DenominacionEnte = "acoplado"
	assert.Equal(t, "ABC123", c.Classify(acoplado, hoy).Display.Plate)

	persona := registro("Pendiente", "")
	persona.DenominacionEnte = "PERSONA"
	assert.Equal(t, "", c.Classify(persona, hoy).Display.Plate)
}

func TestClassify_DesdeJSONConTiposMixtos(t *testing.T) {
	raw := `{
		"DocumentacionDenominacion": "Póliza",
		"ServicioDenominacion": null,
		"DenominacionEnte": "CHASIS",
		"VehiculoPatente": 12345,
		"Archivo": {"EstadoDenominacion": "Aprobado", "FechaVencimiento": "2025-04-09"}
	}`
	var doc entity.Documentacion
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	rec := documentacion.NewClassifier("").Classify(doc, hoy)
	assert.Equal(t, "Póliza", rec.Display.Document)
	assert.Equal(t, "", rec.Display.Service)
	assert.Equal(t, "12345", rec.Display.Plate)
	assert.Equal(t, entity.Days(30), rec.DaysLeft)
}

func TestClassifyAll_ConservaOrden(t *testing.T) {
	c := documentacion.NewClassifier("")
	docs := []entity.Documentacion{registro("Aprobado", "2025-03-11"), registro("Vencido", "")}

	out := c.ClassifyAll(docs, hoy)
	require.Len(t, out, 2)
	assert.Equal(t, entity.StatusAprobado, out[0].Status)
	assert.Equal(t, entity.StatusVencido, out[1].Status)
}
