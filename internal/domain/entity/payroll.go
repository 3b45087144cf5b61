package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos para PayrollEntry.
const (
	PayrollStatusPending = "pending"
	PayrollStatusPaid    = "paid"
)

// PayrollEntry nómina mensual de un conductor. La combinación
// (driverName, month, year) es única (índice único en la colección).
// paymentDate se fija cuando el estado pasa a "paid".
type PayrollEntry struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	DriverID    primitive.ObjectID `json:"driverId" bson:"driverId"`
	DriverName  string             `json:"driverName" bson:"driverName"`
	EmployeeID  string             `json:"employeeId" bson:"employeeId"`
	Month       int                `json:"month" bson:"month"`
	Year        int                `json:"year" bson:"year"`
	BasicSalary float64            `json:"basicSalary" bson:"basicSalary"`
	Allowances  float64            `json:"allowances" bson:"allowances"`
	Deductions  float64            `json:"deductions" bson:"deductions"`
	NetPay      float64            `json:"netPay" bson:"netPay"`
	Status      string             `json:"status" bson:"status"`
	PaymentDate *time.Time         `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TotalAmount ingreso bruto del mes (salario básico + subsidios).
func (p PayrollEntry) TotalAmount() float64 {
	return p.BasicSalary + p.Allowances
}

// ValidPayrollStatus indica si s es un estado permitido.
func ValidPayrollStatus(s string) bool {
	switch s {
	case PayrollStatusPending, PayrollStatusPaid:
		return true
	}
	return false
}
