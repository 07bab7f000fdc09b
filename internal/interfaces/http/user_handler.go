package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (solo admins).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Add godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión (admin)"
// @Param        body   body  dto.AddUserRequest  true  "username, password"
// @Success      200    {array}   dto.AdminUserView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/{token}/adduser [post]
func (h *UserHandler) Add(c *fiber.Ctx) error {
	var in dto.AddUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), c.Params("token"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Modificar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión (admin)"
// @Param        body   body  dto.SetUserRequest  true  "id y campos a cambiar"
// @Success      200    {array}   dto.AdminUserView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/{token}/setuser [post]
func (h *UserHandler) Set(c *fiber.Ctx) error {
	var in dto.SetUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Set(c.UserContext(), c.Params("token"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar usuario y todo lo suyo
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión (admin)"
// @Param        body   body  dto.IDRequest  true  "id del usuario"
// @Success      200    {array}   dto.AdminUserView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/{token}/rmuser [post]
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	var in dto.IDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Remove(c.UserContext(), c.Params("token"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listado administrativo de usuarios
// @Tags         users
// @Produce      json
// @Param        token  path  string  true  "Token de sesión (admin)"
// @Success      200    {array}   dto.AdminUserView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/{token}/ulist [post]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
