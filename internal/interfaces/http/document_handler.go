package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/documents"
	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
)

// DocumentHandler maneja la generación de facturas, presupuestos y contratos.
// Cada documento tiene dos variantes: preview JSON (el modelo ya resuelto) y
// descarga PDF.
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Preview godoc
// @Summary      Armar factura o presupuesto (sin renderizar)
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id de cliente"
// @Param        kind  path  string               true  "invoice | quote"
// @Param        body  body  dto.DocumentRequest  true  "overrides opcionales"
// @Success      200  {object}  documents.Model
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/documents/{kind} [post]
func (h *DocumentHandler) Preview(c *fiber.Ctx) error {
	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Build(c.Context(), GetUserID(c), c.Params("id"), c.Params("kind"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(m)
}

// Download godoc
// @Summary      Generar y descargar el PDF de factura o presupuesto
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        id    path  string               true  "id de cliente"
// @Param        kind  path  string               true  "invoice | quote"
// @Param        body  body  dto.DocumentRequest  true  "overrides opcionales"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/documents/{kind}/pdf [post]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Build(c.Context(), GetUserID(c), c.Params("id"), c.Params("kind"), req)
	if err != nil {
		return fail(c, err)
	}
	pdf, err := h.uc.RenderDocument(c.Context(), m)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-%s.pdf"`, m.Kind, m.Number))
	return c.Send(pdf)
}

// PreviewContract godoc
// @Summary      Armar contrato (título y cuerpo resueltos)
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id de cliente"
// @Param        body  body  dto.ContractRequest  true  "tipo y plantilla opcional"
// @Success      200  {object}  documents.Contract
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contract [post]
func (h *DocumentHandler) PreviewContract(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	contract, err := h.uc.BuildContract(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(contract)
}

// DownloadContract godoc
// @Summary      Generar y descargar el PDF del contrato
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        id    path  string               true  "id de cliente"
// @Param        body  body  dto.ContractRequest  true  "tipo y plantilla opcional"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contract/pdf [post]
func (h *DocumentHandler) DownloadContract(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	contract, err := h.uc.BuildContract(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	pdf, err := h.uc.RenderContract(c.Context(), contract)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contract.pdf"`)
	return c.Send(pdf)
}
