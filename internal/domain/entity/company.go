package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos para Company.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
)

// BusinessHours horario de atención por día (ej. "08:00-18:00", vacío = cerrado).
type BusinessHours struct {
	Monday    string `json:"monday" bson:"monday"`
	Tuesday   string `json:"tuesday" bson:"tuesday"`
	Wednesday string `json:"wednesday" bson:"wednesday"`
	Thursday  string `json:"thursday" bson:"thursday"`
	Friday    string `json:"friday" bson:"friday"`
	Saturday  string `json:"saturday" bson:"saturday"`
	Sunday    string `json:"sunday" bson:"sunday"`
}

// ContactInfo datos de contacto del perfil de empresa.
type ContactInfo struct {
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	Website string `json:"website" bson:"website"`
}

// SocialMedia enlaces a redes sociales.
type SocialMedia struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
	Twitter   string `json:"twitter" bson:"twitter"`
}

// CompanyProfile sub-documento de perfil editable por partes (PATCH por sección).
type CompanyProfile struct {
	About         string        `json:"about" bson:"about"`
	Logo          string        `json:"logo" bson:"logo"` // URL o data-URI
	BusinessHours BusinessHours `json:"businessHours" bson:"businessHours"`
	Contact       ContactInfo   `json:"contact" bson:"contact"`
	SocialMedia   SocialMedia   `json:"socialMedia" bson:"socialMedia"`
}

// Company empresa dueña de los usuarios. La suscripción vencida bloquea el
// acceso a las rutas protegidas (middleware de empresa activa).
type Company struct {
	ID                     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name                   string             `json:"name" bson:"name"`
	NIT                    string             `json:"nit" bson:"nit"`
	Email                  string             `json:"email" bson:"email"`
	Phone                  string             `json:"phone" bson:"phone"`
	Address                string             `json:"address" bson:"address"`
	Status                 string             `json:"status" bson:"status"`
	SubscriptionExpiresAt  *time.Time         `json:"subscriptionExpiresAt,omitempty" bson:"subscriptionExpiresAt,omitempty"`
	Profile                CompanyProfile     `json:"profile" bson:"profile"`
	CreatedAt              time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubscriptionActive indica si la empresa puede operar en el instante now.
// Sin fecha de vencimiento la suscripción se considera vigente.
func (c Company) SubscriptionActive(now time.Time) bool {
	if c.Status != CompanyStatusActive {
		return false
	}
	if c.SubscriptionExpiresAt == nil {
		return true
	}
	return c.SubscriptionExpiresAt.After(now)
}
