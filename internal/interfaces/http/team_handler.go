package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
)

// TeamHandler maneja el equipo del estudio.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler del equipo.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List godoc
// @Summary      Listar el equipo
// @Tags         team
// @Produce      json
// @Success      200  {array}  entity.Photographer
// @Router       /api/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Incorporar miembro al equipo
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TeamMemberInput  true  "nombre, email, rol, color"
// @Success      201  {object}  entity.Photographer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/team [post]
func (h *TeamHandler) Add(c *fiber.Ctx) error {
	var in dto.TeamMemberInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Quitar miembro del equipo
// @Tags         team
// @Param        id  path  string  true  "id de miembro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
