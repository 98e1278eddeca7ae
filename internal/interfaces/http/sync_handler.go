package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/sync"
)

// SyncHandler maneja el export e import de snapshots JSON completos.
type SyncHandler struct {
	uc *sync.UseCase
}

// NewSyncHandler construye el handler de sincronización.
func NewSyncHandler(uc *sync.UseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar un snapshot JSON con todo el estado
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.Snapshot
// @Router       /api/sync/export [get]
func (h *SyncHandler) Export(c *fiber.Ctx) error {
	snap, err := h.uc.Export(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="photocrm-backup.json"`)
	return c.JSON(snap)
}

// Import godoc
// @Summary      Importar un snapshot JSON y reconciliarlo con el estado actual
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RawSnapshot  true  "snapshot exportado"
// @Success      200  {object}  dto.MergeStats
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sync/import [post]
func (h *SyncHandler) Import(c *fiber.Ctx) error {
	stats, err := h.uc.Import(c.Context(), GetUserID(c), c.Body())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
