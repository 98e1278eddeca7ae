package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
)

// CustomerHandler maneja el CRUD de clientes y sus tareas.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes filtrados y ordenados
// @Tags         customers
// @Produce      json
// @Param        q           query  string  false  "texto contra nombre, furigana y contacto"
// @Param        payment     query  string  false  "all | paid | unpaid"
// @Param        month       query  string  false  "all | YYYY-MM (mes de sesión)"
// @Param        assignedTo  query  string  false  "all | id de fotógrafo"
// @Param        sortKey     query  string  false  "campo de ordenación"
// @Param        sortDir     query  string  false  "asc | desc"
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.Context(), GetUserID(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un cliente
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "id de cliente"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerInput  true  "datos del cliente"
// @Success      201  {object}  entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerInput
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
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "id de cliente"
// @Param        body  body  dto.CustomerInput  true  "datos del cliente"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Param        id  path  string  true  "id de cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddTask godoc
// @Summary      Añadir tarea a un cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "id de cliente"
// @Param        body  body  dto.TaskInput  true  "texto y vencimiento"
// @Success      201  {object}  entity.Customer
// @Router       /api/customers/{id}/tasks [post]
func (h *CustomerHandler) AddTask(c *fiber.Ctx) error {
	var in dto.TaskInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddTask(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ToggleTask godoc
// @Summary      Alternar el estado hecho/pendiente de una tarea
// @Tags         customers
// @Produce      json
// @Param        id      path  string  true  "id de cliente"
// @Param        taskId  path  string  true  "id de tarea"
// @Success      200  {object}  entity.Customer
// @Router       /api/customers/{id}/tasks/{taskId}/toggle [patch]
func (h *CustomerHandler) ToggleTask(c *fiber.Ctx) error {
	out, err := h.uc.ToggleTask(c.Context(), GetUserID(c), c.Params("id"), c.Params("taskId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteTask godoc
// @Summary      Eliminar una tarea de un cliente
// @Tags         customers
// @Produce      json
// @Param        id      path  string  true  "id de cliente"
// @Param        taskId  path  string  true  "id de tarea"
// @Success      200  {object}  entity.Customer
// @Router       /api/customers/{id}/tasks/{taskId} [delete]
func (h *CustomerHandler) DeleteTask(c *fiber.Ctx) error {
	out, err := h.uc.DeleteTask(c.Context(), GetUserID(c), c.Params("id"), c.Params("taskId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
