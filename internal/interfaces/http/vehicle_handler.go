package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// VehicleHandler maneja las peticiones HTTP para Vehicle (protegido).
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create crea un vehículo. VIN o placa repetidos responden 400 DUPLICATE.
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in entity.Vehicle
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un vehículo por ID.
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "vehículo no encontrado")
	}
	return c.JSON(out)
}

// List lista vehículos, opcionalmente por estado (?status=).
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search busca por texto, estado, año y rango de kilometraje.
func (h *VehicleHandler) Search(c *fiber.Ctx) error {
	q := repository.VehicleSearch{
		Text:   c.Query("search"),
		Status: c.Query("status"),
	}
	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return badRequest(c, "year debe ser numérico")
		}
		q.Year = year
	}
	if m := c.Query("minMileage"); m != "" {
		min, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return badRequest(c, "minMileage debe ser numérico")
		}
		q.MinMileage = &min
	}
	if m := c.Query("maxMileage"); m != "" {
		max, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return badRequest(c, "maxMileage debe ser numérico")
		}
		q.MaxMileage = &max
	}
	out, err := h.uc.Search(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza los campos editables del vehículo.
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in entity.Vehicle
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "vehículo no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el vehículo. Repetir el delete responde 404.
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "vehículo eliminado"})
}
