package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// AuthHandler maneja login, logout y la vista del usuario.
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.UserView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar la sesión del token
// @Tags         auth
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Success      200
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), c.Params("token")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// List godoc
// @Summary      Vista completa del usuario de la sesión
// @Tags         auth
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/list [post]
func (h *AuthHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
