package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docdomain "github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/internal/interfaces/cli"
)

func registro(status entity.StatusKind, texto, doc, ente, patente string) entity.ClassifiedRecord {
	return entity.ClassifiedRecord{
		Status:     status,
		StatusText: texto,
		Display:    entity.DisplayFields{Document: doc, EntityName: ente, Plate: patente, Service: "Cargas"},
	}
}

func TestRenderTable_ColumnasYOrden(t *testing.T) {
	records := []entity.ClassifiedRecord{
		registro(entity.StatusVencido, "Vencido", "VTV", "AUTOMOVIL", "AB123CD"),
		registro(entity.StatusAprobado, "12 días", "Seguro", "CHOFER", ""),
		registro(entity.StatusUnknown, "", "Licencia", "CHOFER", ""),
	}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderTable(&buf, records, docdomain.Summarize(records)))
	out := buf.String()

	for _, h := range []string{"Estado", "Denominación", "Patente", "Documento", "Servicio"} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "AB123CD")
	assert.Contains(t, out, "12 días")
	assert.Less(t, strings.Index(out, "VTV"), strings.Index(out, "Seguro"), "respeta el orden recibido")
	assert.Less(t, strings.Index(out, "Seguro"), strings.Index(out, "Licencia"))
	assert.Contains(t, out, "Total 3")
	assert.Contains(t, out, "Desconocidos 1")
}

func TestRenderTable_EstadoDesconocidoSinTexto(t *testing.T) {
	records := []entity.ClassifiedRecord{registro(entity.StatusUnknown, "Revisión", "Licencia", "CHOFER", "")}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderTable(&buf, records, docdomain.Summarize(records)))

	assert.NotContains(t, buf.String(), "Revisión")
}

func TestRenderTable_Vacia(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cli.RenderTable(&buf, nil, docdomain.Summary{}))

	assert.Contains(t, buf.String(), "Sin documentación requerida")
	assert.Contains(t, buf.String(), "Total 0")
}

func TestRenderTable_ColumnasAlineadas(t *testing.T) {
	records := []entity.ClassifiedRecord{
		registro(entity.StatusEsperandoAprobacion, "Esperando aprobación", "Póliza de responsabilidad civil", "ACOPLADO", "AA000ZZ"),
		registro(entity.StatusPendiente, "Pendiente", "VTV", "CHOFER", ""),
	}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderTable(&buf, records, docdomain.Summarize(records)))

	tabla := strings.SplitN(buf.String(), "\n\n", 2)[0]
	lineas := strings.Split(tabla, "\n")
	require.Greater(t, len(lineas), 3)
	ancho := lipgloss.Width(lineas[0])
	for i, l := range lineas {
		assert.Equal(t, ancho, lipgloss.Width(l), "línea %d con otro ancho", i)
	}
}
