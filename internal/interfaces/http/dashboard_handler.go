package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/reports"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// DashboardHandler reportes del panel (protegido).
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts conteos generales de la flota.
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FuelMonth gasto de combustible del mes en curso.
func (h *DashboardHandler) FuelMonth(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpenses(c.Context(), entity.ExpenseTypeFuel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FuelMonthByVehicle gasto de combustible del mes agrupado por vehículo.
func (h *DashboardHandler) FuelMonthByVehicle(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpensesByVehicle(c.Context(), entity.ExpenseTypeFuel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MaintenanceMonth gasto de mantenimiento del mes en curso.
func (h *DashboardHandler) MaintenanceMonth(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpenses(c.Context(), entity.ExpenseTypeMaintenance)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MaintenanceMonthByVehicle gasto de mantenimiento del mes por vehículo.
func (h *DashboardHandler) MaintenanceMonthByVehicle(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpensesByVehicle(c.Context(), entity.ExpenseTypeMaintenance)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
