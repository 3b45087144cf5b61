package dto

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// CreateNoteRequest alta de nota. Title, content y category son obligatorios.
type CreateNoteRequest struct {
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	Category string           `json:"category"`
	Priority string           `json:"priority"`
	Status   string           `json:"status"`
	Reminder *entity.Reminder `json:"reminder"`
}

// UpdateNoteRequest edición parcial de nota. Solo los campos presentes se aplican.
type UpdateNoteRequest struct {
	Title    *string          `json:"title"`
	Content  *string          `json:"content"`
	Category *string          `json:"category"`
	Priority *string          `json:"priority"`
	Status   *string          `json:"status"`
	Reminder *entity.Reminder `json:"reminder"`
}
