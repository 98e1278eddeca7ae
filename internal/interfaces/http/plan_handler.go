package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
)

// PlanHandler maneja el catálogo de planes.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler de planes.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo de planes
// @Tags         plans
// @Produce      json
// @Success      200  {array}  entity.PlanEntry
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanInput  true  "nombre y precio base"
// @Success      201  {object}  entity.PlanEntry
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.PlanInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar plan (identificado por su nombre actual)
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        name  path  string         true  "nombre actual del plan"
// @Param        body  body  dto.PlanInput  true  "nombre y precio nuevos"
// @Success      200  {object}  entity.PlanEntry
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plans/{name} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	var in dto.PlanInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("name"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plan
// @Tags         plans
// @Param        name  path  string  true  "nombre del plan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{name} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("name")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
