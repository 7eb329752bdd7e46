package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/application/documentacion"
	"github.com/jhoicas/gestion-docs/internal/application/dto"
	"github.com/jhoicas/gestion-docs/internal/application/ports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	AuthUC       *auth.AuthUseCase
	Orchestrator *documentacion.Orchestrator
	Reports      ports.ReportGenerator
	JWT          JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: deps.AppName})
	})

	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión remota abierta)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret), RequireSession(deps.AuthUC.Session()))
	protected.Post("/auth/logout", authHandler.Logout)

	docHandler := NewDocumentacionHandler(deps.Orchestrator, deps.Reports, "Documentación requerida")
	protected.Get("/documentaciones", docHandler.List)
	protected.Get("/documentaciones/reporte", docHandler.Report)
}
