package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// GroupHandler maneja los grupos de impresoras del usuario de la sesión.
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Add godoc
// @Summary      Crear grupo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.AddGroupRequest  true  "name y printers opcional"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/addgroup [post]
func (h *GroupHandler) Add(c *fiber.Ctx) error {
	var in dto.AddGroupRequest
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
// @Summary      Modificar grupo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.SetGroupRequest  true  "id, name y printers opcional"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/setgroup [post]
func (h *GroupHandler) Set(c *fiber.Ctx) error {
	var in dto.SetGroupRequest
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
// @Summary      Eliminar grupo (las impresoras sobreviven)
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.IDRequest  true  "id del grupo"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/rmgroup [post]
func (h *GroupHandler) Remove(c *fiber.Ctx) error {
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
