package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User usuario del back-office (pertenece a una Company).
// El hash bcrypt nunca se serializa en respuestas JSON.
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         string             `json:"role" bson:"role"`
	Status       string             `json:"status" bson:"status"`
	CompanyID    primitive.ObjectID `json:"company" bson:"company"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidRole indica si s es un rol permitido.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}
