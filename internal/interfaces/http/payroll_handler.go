package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
)

// PayrollHandler maneja las peticiones HTTP para PayrollEntry (protegido).
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Create crea la nómina del mes. Mes repetido para el mismo conductor
// responde 400 DUPLICATE.
func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una nómina por ID.
func (h *PayrollHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "nómina no encontrada")
	}
	return c.JSON(out)
}

// List lista todas las nóminas.
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update mezcla los campos presentes y recalcula netPay.
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "nómina no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina la nómina.
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nómina eliminada"})
}

// Summary totales por (año, mes), ordenados del mes más reciente al más antiguo.
func (h *PayrollHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Drivers lista de conductores para el selector del formulario.
func (h *PayrollHandler) Drivers(c *fiber.Ctx) error {
	out, err := h.uc.Drivers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export descarga la planilla XLSX con todas las nóminas.
func (h *PayrollHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="payroll.xlsx"`)
	return c.Send(data)
}
