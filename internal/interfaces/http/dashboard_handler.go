package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
)

// DashboardHandler maneja las métricas agregadas.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Métricas del mes y acumulados del año
// @Tags         dashboard
// @Produce      json
// @Param        month  query  string  false  "YYYY-MM; vacío = mes actual"
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetUserID(c), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
