package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de gasto válidos.
const (
	ExpenseTypeFuel        = "fuel"
	ExpenseTypeMaintenance = "maintenance"
	ExpenseTypeInsurance   = "insurance"
	ExpenseTypeOther       = "other"
)

// Estados válidos para Expense.
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusRejected = "rejected"
)

// Expense representa un gasto asociado a un vehículo y opcionalmente a un conductor.
// amount se persiste como double; la agregación de reportes usa $sum sobre este campo.
type Expense struct {
	ID          primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	ExpenseType string              `json:"expenseType" bson:"expenseType"`
	Amount      float64             `json:"amount" bson:"amount"`
	Date        time.Time           `json:"date" bson:"date"`
	VehicleID   primitive.ObjectID  `json:"vehicleId" bson:"vehicleId"`
	DriverID    *primitive.ObjectID `json:"driverId,omitempty" bson:"driverId,omitempty"`
	Description string              `json:"description" bson:"description"`
	Status      string              `json:"status" bson:"status"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// ValidExpenseType indica si s es un tipo de gasto permitido.
func ValidExpenseType(s string) bool {
	switch s {
	case ExpenseTypeFuel, ExpenseTypeMaintenance, ExpenseTypeInsurance, ExpenseTypeOther:
		return true
	}
	return false
}

// ValidExpenseStatus indica si s es un estado permitido.
func ValidExpenseStatus(s string) bool {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}
