package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// JobHandler maneja los trabajos de impresión del usuario de la sesión.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Add godoc
// @Summary      Crear trabajo al final de la cola de una impresora
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.AddJobRequest  true  "fileName, printer, owner"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/addjob [post]
func (h *JobHandler) Add(c *fiber.Ctx) error {
	var in dto.AddJobRequest
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
// @Summary      Modificar trabajo (cambiar de impresora lo envía al final)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.SetJobRequest  true  "id y campos a cambiar"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/setjob [post]
func (h *JobHandler) Set(c *fiber.Ctx) error {
	var in dto.SetJobRequest
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
// @Summary      Eliminar trabajo de su cola
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de sesión"
// @Param        body   body  dto.IDRequest  true  "id del trabajo"
// @Success      200    {object}  dto.UserView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/{token}/rmjob [post]
func (h *JobHandler) Remove(c *fiber.Ctx) error {
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
