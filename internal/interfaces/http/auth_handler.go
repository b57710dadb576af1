package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-server/internal/application/auth"
	"github.com/jhoicas/inventario-server/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP del servicio de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica credenciales. Credenciales malas o usuario inexistente
// devuelven 200 con authenticated=false y forma idéntica; solo un error de
// la DB produce una falla remota.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
