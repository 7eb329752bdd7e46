package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/application/dto"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/pkg/jwt"
)

// JWTConfig configuración para generación de tokens locales.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login y logout contra el servicio de documentación.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	jwtCfg JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{uc: uc, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión en el servicio de documentación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, keep_logged_in"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Cada login HTTP se verifica contra el servicio remoto: el token cacheado no sirve
	// como prueba de que estas credenciales sean correctas.
	info, err := h.uc.Relogin(c.UserContext(), entity.Credentials{
		Email:        in.Email,
		Password:     in.Password,
		KeepLoggedIn: in.KeepLoggedIn,
	})
	if err != nil {
		return writeError(c, err)
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, in.Email, info.EntityID, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{
		Token:     token,
		EntidadID: info.EntityID,
		ExpiresIn: h.jwtCfg.ExpMinutes * 60,
	})
}

// Logout godoc
// @Summary      Cerrar sesión y borrar la sesión guardada
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
