package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// ExpenseHandler maneja las peticiones HTTP para Expense (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create crea un gasto. El vehículo referenciado debe existir (404 si no).
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in entity.Expense
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un gasto por ID.
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(out)
}

// List lista todos los gastos, más recientes primero.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByVehicle lista los gastos de un vehículo.
func (h *ExpenseHandler) ListByVehicle(c *fiber.Ctx) error {
	out, err := h.uc.ListByVehicle(c.Context(), c.Params("vehicleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDriver lista los gastos de un conductor.
func (h *ExpenseHandler) ListByDriver(c *fiber.Ctx) error {
	out, err := h.uc.ListByDriver(c.Context(), c.Params("driverId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza los campos editables del gasto.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in entity.Expense
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(out)
}

// UpdateStatus cambia el estado de aprobación (PATCH /:id/status).
func (h *ExpenseHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el gasto.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}

// Summary totales por tipo de gasto, ordenados por monto descendente.
func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
