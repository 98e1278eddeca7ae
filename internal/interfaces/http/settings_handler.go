package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// SettingsHandler maneja la configuración del estudio: impuestos, perfil de
// emisor, campos personalizados, filtros de calendario, listas de opciones y
// preferencias escalares.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetTaxSettings godoc
// @Summary      Configuración de impuestos y datos de empresa
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.TaxSettings
// @Router       /api/settings/tax [get]
func (h *SettingsHandler) GetTaxSettings(c *fiber.Ctx) error {
	out, err := h.uc.TaxSettings(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SaveTaxSettings godoc
// @Summary      Guardar configuración de impuestos
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  entity.TaxSettings  true  "configuración completa"
// @Success      200  {object}  entity.TaxSettings
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/tax [put]
func (h *SettingsHandler) SaveTaxSettings(c *fiber.Ctx) error {
	var in entity.TaxSettings
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SaveTaxSettings(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetSenderProfile godoc
// @Summary      Perfil de emisor de facturas
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.SenderProfile
// @Router       /api/settings/sender [get]
func (h *SettingsHandler) GetSenderProfile(c *fiber.Ctx) error {
	out, err := h.uc.SenderProfile(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SaveSenderProfile godoc
// @Summary      Guardar perfil de emisor
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  entity.SenderProfile  true  "perfil completo"
// @Success      200  {object}  entity.SenderProfile
// @Router       /api/settings/sender [put]
func (h *SettingsHandler) SaveSenderProfile(c *fiber.Ctx) error {
	var in entity.SenderProfile
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SaveSenderProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListCustomFields godoc
// @Summary      Definiciones de campos personalizados
// @Tags         settings
// @Produce      json
// @Success      200  {array}  entity.CustomField
// @Router       /api/settings/custom-fields [get]
func (h *SettingsHandler) ListCustomFields(c *fiber.Ctx) error {
	out, err := h.uc.CustomFields(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddCustomField godoc
// @Summary      Crear campo personalizado
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomFieldInput  true  "etiqueta"
// @Success      201  {object}  entity.CustomField
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/custom-fields [post]
func (h *SettingsHandler) AddCustomField(c *fiber.Ctx) error {
	var in dto.CustomFieldInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddCustomField(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveCustomField godoc
// @Summary      Eliminar campo personalizado
// @Tags         settings
// @Param        id  path  string  true  "id del campo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/custom-fields/{id} [delete]
func (h *SettingsHandler) RemoveCustomField(c *fiber.Ctx) error {
	if err := h.uc.RemoveCustomField(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCalendarFilters godoc
// @Summary      Filtros de hito del calendario
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.CalendarFilters
// @Router       /api/settings/calendar-filters [get]
func (h *SettingsHandler) GetCalendarFilters(c *fiber.Ctx) error {
	out, err := h.uc.CalendarFilters(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SaveCalendarFilters godoc
// @Summary      Guardar filtros de calendario
// @Tags         settings
// @Accept       json
// @Param        body  body  entity.CalendarFilters  true  "visibilidad por hito"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/settings/calendar-filters [put]
func (h *SettingsHandler) SaveCalendarFilters(c *fiber.Ctx) error {
	var in entity.CalendarFilters
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SaveCalendarFilters(c.Context(), GetUserID(c), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "filtros guardados"})
}

// GetOptions godoc
// @Summary      Listas de opciones con nombre
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/settings/options [get]
func (h *SettingsHandler) GetOptions(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SaveOptions godoc
// @Summary      Reemplazar las listas de opciones
// @Tags         settings
// @Accept       json
// @Param        body  body  map[string][]string  true  "todas las listas"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/settings/options [put]
func (h *SettingsHandler) SaveOptions(c *fiber.Ctx) error {
	var in map[string][]string
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SaveOptions(c.Context(), GetUserID(c), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "opciones guardadas"})
}

// GetPreference godoc
// @Summary      Leer una preferencia (currency, lang, theme, ...)
// @Tags         settings
// @Produce      json
// @Param        name  path  string  true  "nombre de la preferencia"
// @Success      200  {object}  dto.PreferenceInput
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/preferences/{name} [get]
func (h *SettingsHandler) GetPreference(c *fiber.Ctx) error {
	value, err := h.uc.Preference(c.Context(), GetUserID(c), c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PreferenceInput{Value: value})
}

// SetPreference godoc
// @Summary      Guardar una preferencia
// @Tags         settings
// @Accept       json
// @Param        name  path  string               true  "nombre de la preferencia"
// @Param        body  body  dto.PreferenceInput  true  "valor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/preferences/{name} [put]
func (h *SettingsHandler) SetPreference(c *fiber.Ctx) error {
	var in dto.PreferenceInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetPreference(c.Context(), GetUserID(c), c.Params("name"), in.Value); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "preferencia guardada"})
}
