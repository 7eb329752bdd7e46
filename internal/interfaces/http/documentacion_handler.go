package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-docs/internal/application/documentacion"
	"github.com/jhoicas/gestion-docs/internal/application/dto"
	"github.com/jhoicas/gestion-docs/internal/application/ports"
)

// DocumentacionHandler expone la documentación clasificada de la sesión activa.
type DocumentacionHandler struct {
	orch    *documentacion.Orchestrator
	reports ports.ReportGenerator
	title   string
}

// NewDocumentacionHandler construye el handler.
func NewDocumentacionHandler(orch *documentacion.Orchestrator, reports ports.ReportGenerator, title string) *DocumentacionHandler {
	return &DocumentacionHandler{orch: orch, reports: reports, title: title}
}

// List godoc
// @Summary      Documentación requerida del mes en curso, clasificada y ordenada
// @Tags         documentaciones
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.DocumentacionesResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/documentaciones [get]
func (h *DocumentacionHandler) List(c *fiber.Ctx) error {
	res, err := h.orch.Current(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DocumentacionesResponse{
		Periodo: dto.PeriodoResponse{
			Mes:       res.Query.Month,
			Anio:      res.Query.Year,
			EntidadID: res.Query.EntityID,
		},
		Items:   res.Records,
		Resumen: res.Summary,
	})
}

// Report godoc
// @Summary      Reporte PDF de la documentación requerida del mes en curso
// @Tags         documentaciones
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/documentaciones/reporte [get]
func (h *DocumentacionHandler) Report(c *fiber.Ctx) error {
	res, err := h.orch.Current(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.reports.GenerateDocumentacionPDF(c.UserContext(), res.Report(h.title, time.Now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="documentacion-%d-%02d.pdf"`, res.Query.Year, res.Query.Month))
	return c.Send(b)
}
