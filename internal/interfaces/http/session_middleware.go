package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-docs/internal/application/dto"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// sessionReader es el contrato mínimo que necesita el middleware. Lo implementa *auth.Session.
type sessionReader interface {
	Info() (entity.SessionInfo, bool)
}

// RequireSession verifica que la sesión remota siga abierta y sea la de la entidad del token.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalEntidadID). Tras un logout los JWT
// emitidos antes dejan de servir aunque no hayan expirado.
func RequireSession(sessions sessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, ok := sessions.Info()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_CLOSED",
				Message: "la sesión con el servicio de documentación está cerrada",
			})
		}
		if info.EntityID != GetEntidadID(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_MISMATCH",
				Message: "el token no corresponde a la sesión activa",
			})
		}
		return c.Next()
	}
}
