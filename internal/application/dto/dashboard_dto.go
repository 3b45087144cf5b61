package dto

import (
	"encoding/json"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// DashboardCounts conteos generales del panel.
type DashboardCounts struct {
	ActiveVehicles int64 `json:"activeVehicles"`
	ActiveDrivers  int64 `json:"activeDrivers"`
	TotalVehicles  int64 `json:"totalVehicles"`
	TotalDrivers   int64 `json:"totalDrivers"`
}

// MonthlyExpenseResponse agregado mensual de un tipo de gasto. Con cero
// registros en el mes se devuelve en ceros con la lista vacía, nunca error.
// La lista de registros se serializa bajo una clave derivada del tipo:
// fuelExpenses para fuel, maintenanceExpenses para maintenance.
type MonthlyExpenseResponse struct {
	ExpenseType       string           `json:"-"`
	TotalCost         float64          `json:"totalCost"`
	TotalTransactions int              `json:"totalTransactions"`
	Expenses          []entity.Expense `json:"-"`
	Month             int              `json:"month"`
	Year              int              `json:"year"`
}

// MarshalJSON serializa la lista bajo la clave propia del tipo de gasto.
func (r MonthlyExpenseResponse) MarshalJSON() ([]byte, error) {
	expenses := r.Expenses
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return json.Marshal(map[string]any{
		"totalCost":                r.TotalCost,
		"totalTransactions":        r.TotalTransactions,
		r.ExpenseType + "Expenses": expenses,
		"month":                    r.Month,
		"year":                     r.Year,
	})
}

// MonthlyByVehicleResponse agregado mensual agrupado por vehículo, ordenado
// por costo total descendente. GrandTotal es la suma de los totales por grupo;
// TotalVehicles el número de vehículos con gastos en el mes.
type MonthlyByVehicleResponse struct {
	Vehicles      []repository.VehicleExpenseGroup `json:"vehicles"`
	TotalVehicles int                              `json:"totalVehicles"`
	GrandTotal    float64                          `json:"grandTotal"`
	Month         int                              `json:"month"`
	Year          int                              `json:"year"`
}
