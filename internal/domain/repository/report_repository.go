package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// ExpenseAggregate resultado de la suma agregada de gastos en un rango de fechas.
type ExpenseAggregate struct {
	TotalCost         float64          `bson:"totalCost"`
	TotalTransactions int              `bson:"totalTransactions"`
	Expenses          []entity.Expense `bson:"expenses"`
}

// VehicleExpenseGroup grupo de gastos de un vehículo en el rango consultado.
// Vehicle puede ser nil si el vehículo referenciado ya no existe.
type VehicleExpenseGroup struct {
	VehicleID         string           `bson:"-" json:"vehicleId"`
	TotalCost         float64          `bson:"totalCost" json:"totalCost"`
	TotalTransactions int              `bson:"totalTransactions" json:"totalTransactions"`
	Expenses          []entity.Expense `bson:"expenses" json:"expenses"`
	Vehicle           *entity.Vehicle  `bson:"-" json:"vehicleInfo,omitempty"`
}

// ReportRepository consultas de agregación para los reportes del dashboard.
// Ambas operaciones comparten el mismo pipeline parametrizado: match por tipo
// de gasto y rango de fechas, suma de amount, conteo y push de los registros.
type ReportRepository interface {
	// AggregateExpenses suma todos los gastos del tipo dado en [from, to].
	// Sin coincidencias devuelve un agregado en cero con lista vacía, nunca error.
	AggregateExpenses(ctx context.Context, expenseType string, from, to time.Time) (*ExpenseAggregate, error)
	// AggregateExpensesByVehicle agrupa por vehículo, enriquece cada grupo con el
	// vehículo referenciado y ordena por costo total descendente.
	AggregateExpensesByVehicle(ctx context.Context, expenseType string, from, to time.Time) ([]VehicleExpenseGroup, error)
}
