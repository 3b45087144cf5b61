package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos para Vehicle.
const (
	VehicleStatusActive      = "active"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusRetired     = "retired"
)

// Tipos de combustible válidos.
const (
	FuelTypeGasoline = "gasoline"
	FuelTypeDiesel   = "diesel"
	FuelTypeElectric = "electric"
	FuelTypeHybrid   = "hybrid"
)

// Vehicle representa un vehículo de la flota.
// VIN y licensePlate son únicos (índice único en la colección).
type Vehicle struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Make               string             `json:"make" bson:"make"`
	Model              string             `json:"model" bson:"model"`
	Year               int                `json:"year" bson:"year"`
	VIN                string             `json:"vin" bson:"vin"`
	LicensePlate       string             `json:"licensePlate" bson:"licensePlate"`
	RegistrationExpiry time.Time          `json:"registrationExpiry" bson:"registrationExpiry"`
	Status             string             `json:"status" bson:"status"`
	FuelType           string             `json:"fuelType" bson:"fuelType"`
	CurrentMileage     float64            `json:"currentMileage" bson:"currentMileage"`
	LastServiceDate    time.Time          `json:"lastServiceDate" bson:"lastServiceDate"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidVehicleStatus indica si s es un estado permitido.
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusRetired:
		return true
	}
	return false
}

// ValidFuelType indica si s es un tipo de combustible permitido.
func ValidFuelType(s string) bool {
	switch s {
	case FuelTypeGasoline, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid:
		return true
	}
	return false
}
