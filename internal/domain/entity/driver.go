package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos para Driver.
const (
	DriverStatusActive   = "active"
	DriverStatusInactive = "inactive"
	DriverStatusOnLeave  = "on_leave"
)

// Driver representa un conductor de la flota.
type Driver struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	EmployeeID    string             `json:"employeeId" bson:"employeeId"`
	Status        string             `json:"status" bson:"status"`
	ContactNumber string             `json:"contactNumber" bson:"contactNumber"`
	Email         string             `json:"email" bson:"email"`
	LicenseNumber string             `json:"licenseNumber" bson:"licenseNumber"`
	LicenseExpiry time.Time          `json:"licenseExpiry" bson:"licenseExpiry"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FullName concatena nombre y apellido para etiquetas de UI y export.
func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// ValidDriverStatus indica si s es un estado permitido.
func ValidDriverStatus(s string) bool {
	switch s {
	case DriverStatusActive, DriverStatusInactive, DriverStatusOnLeave:
		return true
	}
	return false
}
