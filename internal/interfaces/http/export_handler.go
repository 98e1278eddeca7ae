package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	appexport "github.com/jhoicas/PhotoCRM-api/internal/application/export"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	infraexport "github.com/jhoicas/PhotoCRM-api/internal/infrastructure/export"
)

// ExportHandler maneja las descargas del listado de clientes (CSV, XLSX) y
// del calendario (ICS). Los exports respetan los mismos filtros del listado.
type ExportHandler struct {
	customers *usecase.CustomerUseCase
	settings  *usecase.SettingsUseCase
}

// NewExportHandler construye el handler de exportaciones.
func NewExportHandler(customers *usecase.CustomerUseCase, settings *usecase.SettingsUseCase) *ExportHandler {
	return &ExportHandler{customers: customers, settings: settings}
}

// CSV godoc
// @Summary      Descargar el listado filtrado como CSV
// @Tags         export
// @Produce      text/csv
// @Param        q        query  string  false  "texto libre"
// @Param        payment  query  string  false  "all | paid | unpaid"
// @Param        month    query  string  false  "all | YYYY-MM"
// @Success      200  {file}  binary
// @Router       /api/export/customers.csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	userID := GetUserID(c)
	list, err := h.customers.List(c.Context(), userID, req)
	if err != nil {
		return fail(c, err)
	}
	fields, err := h.settings.CustomFields(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	out := appexport.BuildCustomersCSV(list.Items, fields)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="customers.csv"`)
	return c.Send(out)
}

// XLSX godoc
// @Summary      Descargar el listado filtrado como XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q        query  string  false  "texto libre"
// @Param        payment  query  string  false  "all | paid | unpaid"
// @Param        month    query  string  false  "all | YYYY-MM"
// @Success      200  {file}  binary
// @Router       /api/export/customers.xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	userID := GetUserID(c)
	list, err := h.customers.List(c.Context(), userID, req)
	if err != nil {
		return fail(c, err)
	}
	fields, err := h.settings.CustomFields(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	out, err := infraexport.BuildCustomersXLSX(list.Items, fields)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="customers.xlsx"`)
	return c.Send(out)
}

// ICS godoc
// @Summary      Descargar los hitos de un mes como iCalendar
// @Tags         export
// @Produce      text/calendar
// @Param        month  query  string  false  "YYYY-MM (por defecto el mes actual)"
// @Success      200  {file}  binary
// @Router       /api/export/calendar.ics [get]
func (h *ExportHandler) ICS(c *fiber.Ctx) error {
	userID := GetUserID(c)
	list, err := h.customers.List(c.Context(), userID, dto.FilterRequest{})
	if err != nil {
		return fail(c, err)
	}
	filters, err := h.settings.CalendarFilters(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	out, _ := appexport.BuildCalendarICS(list.Items, *filters, c.Query("month"), time.Now())
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="photocrm.ics"`)
	return c.Send(out)
}
