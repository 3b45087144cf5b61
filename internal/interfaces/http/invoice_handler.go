package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/billing"
	"github.com/jhoicas/Flota-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create crea una factura en draft. Contrato inexistente responde 404 y
// número de factura repetido 400 DUPLICATE.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una factura por ID.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// List lista todas las facturas, más recientes primero.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByContract lista las facturas de un contrato.
func (h *InvoiceHandler) ListByContract(c *fiber.Ctx) error {
	out, err := h.uc.ListByContract(c.Context(), c.Params("contractId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update aplica solo los campos de la whitelist.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// AddPayment registra un abono (POST /:id/payments).
func (h *InvoiceHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.AddPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// Send marca la factura como enviada (POST /:id/send).
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina la factura.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura eliminada"})
}

// Stats estadísticas globales de facturación.
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF descarga la representación gráfica de la factura.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
