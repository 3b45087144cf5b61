package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prioridades válidas para Note.
const (
	NotePriorityLow    = "low"
	NotePriorityMedium = "medium"
	NotePriorityHigh   = "high"
)

// Estados válidos para Note.
const (
	NoteStatusActive   = "active"
	NoteStatusArchived = "archived"
)

// Reminder datos del recordatorio asociado a una nota. El número de WhatsApp
// se valida con formato E.164 antes de persistir.
type Reminder struct {
	Date           time.Time `json:"date" bson:"date"`
	WhatsappNumber string    `json:"whatsappNumber,omitempty" bson:"whatsappNumber,omitempty"`
}

// Note nota administrativa de la oficina. Si trae Reminder, al crear o
// actualizar se dispara la programación en el servicio externo.
type Note struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Category  string             `json:"category" bson:"category"`
	Priority  string             `json:"priority" bson:"priority"`
	Status    string             `json:"status" bson:"status"`
	Reminder  *Reminder          `json:"reminder,omitempty" bson:"reminder,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidNotePriority indica si s es una prioridad permitida.
func ValidNotePriority(s string) bool {
	switch s {
	case NotePriorityLow, NotePriorityMedium, NotePriorityHigh:
		return true
	}
	return false
}

// ValidNoteStatus indica si s es un estado permitido.
func ValidNoteStatus(s string) bool {
	switch s {
	case NoteStatusActive, NoteStatusArchived:
		return true
	}
	return false
}
