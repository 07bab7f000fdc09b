package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// PrinterHandler maneja las impresoras del usuario de la sesión.
type PrinterHandler struct {
	uc *usecase.PrinterUseCase
}

// NewPrinterHandler construye el handler.
func NewPrinterHandler(uc *usecase.PrinterUseCase) *PrinterHandler {
	return &PrinterHandler{uc: uc}
}

// Add godoc
// @Summary      Crear impresora
// @Tags         printers
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.AddPrinterRequest  true  "alias y campos opcionales"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/addprinter [post]
func (h *PrinterHandler) Add(c *fiber.Ctx) error {
	var in dto.AddPrinterRequest
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
// @Summary      Modificar impresora
// @Tags         printers
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.SetPrinterRequest  true  "id y campos a cambiar"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/setprinter [post]
func (h *PrinterHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPrinterRequest
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
// @Summary      Eliminar impresora, su cola y sus pertenencias a grupos
// @Tags         printers
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.IDRequest  true  "id de la impresora"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/rmprinter [post]
func (h *PrinterHandler) Remove(c *fiber.Ctx) error {
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
