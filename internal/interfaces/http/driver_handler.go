package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// DriverHandler maneja las peticiones HTTP para Driver (protegido).
type DriverHandler struct {
	uc *usecase.DriverUseCase
}

// NewDriverHandler construye el handler.
func NewDriverHandler(uc *usecase.DriverUseCase) *DriverHandler {
	return &DriverHandler{uc: uc}
}

// Create crea un conductor.
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	var in entity.Driver
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un conductor por ID.
func (h *DriverHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "conductor no encontrado")
	}
	return c.JSON(out)
}

// List lista conductores, opcionalmente por estado (?status=).
func (h *DriverHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza los campos editables del conductor.
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	var in entity.Driver
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "conductor no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el conductor.
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "conductor eliminado"})
}
